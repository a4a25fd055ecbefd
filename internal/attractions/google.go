package attractions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"attractions-gpx/internal/grid"
	"attractions-gpx/internal/providers/googleplaces"
	"attractions-gpx/internal/types"
)

// Google Places grid parameters. A single nearby-search page caps out
// around 20 results, so the area is oversampled with small-radius cells.
const (
	googleHalfSideMeters = 4000.0
	googleStepMeters     = 1000.0
	googleCellRadius     = 600
	googlePlaceType      = "tourist_attraction"
)

// Places below these thresholds are dropped.
const (
	googleMinRating  = 4.0
	googleMinReviews = 20
)

var ErrMissingGoogleKey = errors.New("google places API key is required")

// NearbySearchProvider fetches one page of nearby places around a point.
type NearbySearchProvider interface {
	NearbySearch(ctx context.Context, latitude, longitude float64, radiusMeters int, placeType, apiKey string) (*googleplaces.NearbySearchAPIResponse, error)
}

// GoogleSource queries Google Places over a grid of overlapping
// nearby-search cells.
type GoogleSource struct {
	provider NearbySearchProvider
	apiKey   string
	delay    time.Duration
	logger   *slog.Logger
}

type googlePlace struct {
	name             string
	latitude         float64
	longitude        float64
	rating           float64
	userRatingsTotal int
	mapsLink         string
}

func NewGoogleSource(apiKey string, logger *slog.Logger) *GoogleSource {
	return NewGoogleSourceWithProvider(googleplaces.NewClient(logger), apiKey, logger)
}

// NewGoogleSourceWithProvider injects a custom provider, for tests.
func NewGoogleSourceWithProvider(provider NearbySearchProvider, apiKey string, logger *slog.Logger) *GoogleSource {
	return &GoogleSource{
		provider: provider,
		apiKey:   apiKey,
		delay:    interCallDelay,
		logger:   logger.With("source", "google"),
	}
}

func (s *GoogleSource) Name() string { return "Google" }

// GetData walks the sampling grid, collecting nearby-search results into
// a value-equality set. A failed cell contributes nothing; only a missing
// credential or cancellation fails the source as a whole.
func (s *GoogleSource) GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error) {
	if s.apiKey == "" {
		return nil, ErrMissingGoogleKey
	}

	cells := grid.Sample(coords, googleHalfSideMeters, googleStepMeters)
	seen := make(map[googlePlace]struct{})
	var places []googlePlace

	for _, cell := range cells {
		resp, err := s.provider.NearbySearch(ctx, cell.Latitude, cell.Longitude, googleCellRadius, googlePlaceType, s.apiKey)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("nearby search failed for grid cell", "cell", cell.String(), "error", err)
			continue
		}

		for _, result := range resp.Results {
			if result.Rating < googleMinRating || result.UserRatingsTotal < googleMinReviews {
				continue
			}

			place := googlePlace{
				name:             result.Name,
				latitude:         result.Geometry.Location.Lat,
				longitude:        result.Geometry.Location.Lng,
				rating:           result.Rating,
				userRatingsTotal: result.UserRatingsTotal,
				mapsLink:         "https://www.google.com/maps/search/?api=1&query=Google&query_place_id=" + result.PlaceId,
			}
			if _, ok := seen[place]; ok {
				continue
			}
			seen[place] = struct{}{}
			places = append(places, place)
		}

		if err := pause(ctx, s.delay); err != nil {
			return nil, err
		}
	}

	points := make([]types.Point, 0, len(places))
	for _, place := range places {
		points = append(points, types.Point{
			Name:        place.name,
			Coordinates: types.NewCoords(place.latitude, place.longitude),
			Description: fmt.Sprintf("Rating: %v, Reviews: %d, Link: %s", place.rating, place.userRatingsTotal, place.mapsLink),
		})
	}

	return points, nil
}
