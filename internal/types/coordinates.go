package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedCoords  = errors.New("coordinates must be two numeric values separated by a comma or whitespace")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Coords is an immutable latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// ParseCoords parses a "lat,lng" string. Whitespace-separated input is
// accepted as a fallback. The result round-trips through String.
func ParseCoords(text string) (Coords, error) {
	trimmed := strings.TrimSpace(text)

	var tokens []string
	if strings.Contains(trimmed, ",") {
		for _, tok := range strings.Split(trimmed, ",") {
			tokens = append(tokens, strings.TrimSpace(tok))
		}
	} else {
		tokens = strings.Fields(trimmed)
	}

	if len(tokens) != 2 {
		return Coords{}, fmt.Errorf("%w: got %d values", ErrMalformedCoords, len(tokens))
	}

	latitude, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %q is not a number", ErrMalformedCoords, tokens[0])
	}
	longitude, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %q is not a number", ErrMalformedCoords, tokens[1])
	}

	if latitude < -90 || latitude > 90 {
		return Coords{}, fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coords{}, fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
	}

	return NewCoords(latitude, longitude), nil
}

// String formats the pair as "lat,lng" with full floating-point precision.
func (c Coords) String() string {
	return fmt.Sprintf("%v,%v", c.Latitude, c.Longitude)
}
