package attractions

import (
	"context"
	"log/slog"
	"strings"

	"attractions-gpx/internal/providers/overpass"
	"attractions-gpx/internal/types"
)

// OverpassProvider runs one radius query for attraction-tagged elements.
type OverpassProvider interface {
	QueryAttractions(ctx context.Context, latitude, longitude float64, radiusMeters int) (*overpass.QueryAPIResponse, error)
}

// OsmSource queries the Overpass API. The category-tag disjunction in the
// query is the filter; one large-radius call covers the whole area, so no
// grid oversampling is needed.
type OsmSource struct {
	provider OverpassProvider
	language string
	logger   *slog.Logger
}

type osmPlace struct {
	name        string
	latitude    float64
	longitude   float64
	description string
}

func NewOsmSource(language string, logger *slog.Logger) *OsmSource {
	return NewOsmSourceWithProvider(overpass.NewClient(logger), language, logger)
}

// NewOsmSourceWithProvider injects a custom provider, for tests.
func NewOsmSourceWithProvider(provider OverpassProvider, language string, logger *slog.Logger) *OsmSource {
	return &OsmSource{
		provider: provider,
		language: language,
		logger:   logger.With("source", "osm"),
	}
}

func (s *OsmSource) Name() string { return "OSM" }

// GetData queries Overpass once and normalizes the elements. Elements
// without resolvable coordinates are dropped; unnamed ones get a
// placeholder name.
func (s *OsmSource) GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error) {
	resp, err := s.provider.QueryAttractions(ctx, coords.Latitude, coords.Longitude, radiusMeters)
	if err != nil {
		return nil, err
	}

	seen := make(map[osmPlace]struct{})
	var places []osmPlace
	for _, element := range resp.Elements {
		latitude, longitude := element.Position()
		if latitude == 0 || longitude == 0 {
			continue
		}

		place := osmPlace{
			name:        nameFromTags(element.Tags, s.language),
			latitude:    latitude,
			longitude:   longitude,
			description: describeTags(element.Tags),
		}
		if _, ok := seen[place]; ok {
			continue
		}
		seen[place] = struct{}{}
		places = append(places, place)
	}

	points := make([]types.Point, 0, len(places))
	for _, place := range places {
		points = append(points, types.Point{
			Name:        place.name,
			Coordinates: types.NewCoords(place.latitude, place.longitude),
			Description: place.description,
		})
	}

	return points, nil
}

// describeTags builds a categorical annotation from the element's tags.
func describeTags(tags map[string]string) string {
	var parts []string
	if tourism := tags["tourism"]; tourism != "" {
		parts = append(parts, "Tourism: "+tourism)
	}
	if leisure := tags["leisure"]; leisure != "" {
		parts = append(parts, "Leisure: "+leisure)
	}
	if historic := tags["historic"]; historic != "" {
		parts = append(parts, "Historic: "+historic)
	}
	if natural := tags["natural"]; natural != "" {
		parts = append(parts, "Natural: "+natural)
	}
	if description := tags["description"]; description != "" {
		parts = append(parts, description)
	}

	if len(parts) == 0 {
		return "OSM Place"
	}
	return strings.Join(parts, "; ")
}
