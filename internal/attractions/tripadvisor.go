package attractions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"attractions-gpx/internal/grid"
	"attractions-gpx/internal/providers/tripadvisor"
	"attractions-gpx/internal/types"
)

// TripAdvisor grid parameters. The search radius is large, so a coarse
// grid is enough; each cell still needs a per-ID details fetch.
const (
	tripAdvisorHalfSideMeters = 5000.0
	tripAdvisorStepMeters     = 5000.0
	tripAdvisorCellRadius     = 2500
)

const (
	tripAdvisorMinRating  = 4.0
	tripAdvisorMinReviews = 10
)

var ErrMissingTripAdvisorKey = errors.New("tripadvisor API key is required")

// LocationProvider is the two-phase TripAdvisor content API: a nearby
// search for location IDs, then a details fetch per ID.
type LocationProvider interface {
	SearchNearby(ctx context.Context, latitude, longitude float64, radiusMeters int, apiKey string) (*tripadvisor.LocationSearchAPIResponse, error)
	GetDetails(ctx context.Context, locationId, apiKey string) (*tripadvisor.LocationDetailsAPIResponse, error)
}

// TripAdvisorSource queries the TripAdvisor content API over a coarse grid.
type TripAdvisorSource struct {
	provider LocationProvider
	apiKey   string
	delay    time.Duration
	logger   *slog.Logger
}

type tripAdvisorPlace struct {
	name       string
	latitude   float64
	longitude  float64
	rating     float64
	numReviews int
	locationId string
}

func NewTripAdvisorSource(apiKey string, logger *slog.Logger) *TripAdvisorSource {
	return NewTripAdvisorSourceWithProvider(tripadvisor.NewClient(logger), apiKey, logger)
}

// NewTripAdvisorSourceWithProvider injects a custom provider, for tests.
func NewTripAdvisorSourceWithProvider(provider LocationProvider, apiKey string, logger *slog.Logger) *TripAdvisorSource {
	return &TripAdvisorSource{
		provider: provider,
		apiKey:   apiKey,
		delay:    interCallDelay,
		logger:   logger.With("source", "tripadvisor"),
	}
}

func (s *TripAdvisorSource) Name() string { return "TripAdvisor" }

// GetData searches each grid cell for location IDs, fetches details per
// ID, and keeps well-rated places. IDs are deduplicated before the detail
// fetches so overlapping cells don't trigger duplicate lookups.
func (s *TripAdvisorSource) GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error) {
	if s.apiKey == "" {
		return nil, ErrMissingTripAdvisorKey
	}

	cells := grid.Sample(coords, tripAdvisorHalfSideMeters, tripAdvisorStepMeters)

	seenIds := make(map[string]struct{})
	var locationIds []string
	for _, cell := range cells {
		resp, err := s.provider.SearchNearby(ctx, cell.Latitude, cell.Longitude, tripAdvisorCellRadius, s.apiKey)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("location search failed for grid cell", "cell", cell.String(), "error", err)
			continue
		}

		for _, item := range resp.Data {
			if item.LocationId == "" {
				continue
			}
			if _, ok := seenIds[item.LocationId]; ok {
				continue
			}
			seenIds[item.LocationId] = struct{}{}
			locationIds = append(locationIds, item.LocationId)
		}
	}

	seen := make(map[tripAdvisorPlace]struct{})
	var places []tripAdvisorPlace
	for _, locationId := range locationIds {
		details, err := s.provider.GetDetails(ctx, locationId, s.apiKey)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("details fetch failed", "location_id", locationId, "error", err)
			continue
		}

		place := parseDetails(locationId, details)
		if place.rating < tripAdvisorMinRating || place.numReviews < tripAdvisorMinReviews {
			continue
		}
		if _, ok := seen[place]; ok {
			continue
		}
		seen[place] = struct{}{}
		places = append(places, place)

		if err := pause(ctx, s.delay); err != nil {
			return nil, err
		}
	}

	points := make([]types.Point, 0, len(places))
	for _, place := range places {
		points = append(points, types.Point{
			Name:        place.name,
			Coordinates: types.NewCoords(place.latitude, place.longitude),
			Description: fmt.Sprintf("Rating: %v/5.0 (%d reviews) - TripAdvisor ID: %s", place.rating, place.numReviews, place.locationId),
		})
	}

	return points, nil
}

// parseDetails converts the stringly-typed details payload; unparsable
// numbers fall back to zero and get filtered out by the caller.
func parseDetails(locationId string, details *tripadvisor.LocationDetailsAPIResponse) tripAdvisorPlace {
	name := details.Name
	if name == "" {
		name = "No name"
	}

	latitude, _ := strconv.ParseFloat(details.Latitude, 64)
	longitude, _ := strconv.ParseFloat(details.Longitude, 64)
	rating, _ := strconv.ParseFloat(details.Rating, 64)
	numReviews, _ := strconv.Atoi(details.NumReviews)

	return tripAdvisorPlace{
		name:       name,
		latitude:   latitude,
		longitude:  longitude,
		rating:     rating,
		numReviews: numReviews,
		locationId: locationId,
	}
}
