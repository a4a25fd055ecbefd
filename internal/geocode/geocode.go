// Package geocode resolves a coordinate to a short human-readable place
// name, used to label generated GPX files.
package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"attractions-gpx/internal/providers/nominatim"
	"attractions-gpx/internal/types"
)

// ReverseProvider resolves a coordinate to address metadata.
type ReverseProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64, language string) (*nominatim.ReverseAPIResponse, error)
}

// Service resolves place names for coordinates.
type Service interface {
	// LocationName returns the most specific non-blank address field for
	// the coordinate, or the empty string when the address is empty.
	LocationName(ctx context.Context, coords types.Coords, language string) (string, error)
}

type geocodeService struct {
	provider ReverseProvider
	logger   *slog.Logger
}

func NewGeocodeService(logger *slog.Logger) Service {
	return NewGeocodeServiceWithProvider(nominatim.NewClient(logger), logger)
}

// NewGeocodeServiceWithProvider injects a custom provider, for tests.
func NewGeocodeServiceWithProvider(provider ReverseProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) LocationName(ctx context.Context, coords types.Coords, language string) (string, error) {
	resp, err := s.provider.Reverse(ctx, coords.Latitude, coords.Longitude, language)
	if err != nil {
		return "", fmt.Errorf("failed to reverse geocode: %w", err)
	}

	// Most specific field wins.
	candidates := []string{
		resp.Address.CityDistrict,
		resp.Address.Town,
		resp.Address.City,
		resp.Address.Province,
		resp.Address.State,
		resp.Address.Region,
		resp.Address.Country,
		resp.DisplayName,
	}
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}

	return "", nil
}
