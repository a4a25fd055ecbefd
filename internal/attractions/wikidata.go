package attractions

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"attractions-gpx/internal/providers/wikidata"
	"attractions-gpx/internal/types"
)

// SPARQLProvider runs the geo-proximity queries against the Wikidata
// Query Service.
type SPARQLProvider interface {
	QueryAttractions(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*wikidata.SPARQLAPIResponse, error)
	QueryArticles(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*wikidata.SPARQLAPIResponse, error)
}

// WikidataSource issues a single radius query for tourist-attraction
// items and annotates each with its instance-of classes and item URL.
type WikidataSource struct {
	provider SPARQLProvider
	language string
	logger   *slog.Logger
}

type wikidataPlace struct {
	label      string
	latitude   float64
	longitude  float64
	itemUrl    string
	instanceOf string
}

func NewWikidataSource(language string, logger *slog.Logger) *WikidataSource {
	return NewWikidataSourceWithProvider(wikidata.NewClient(logger), language, logger)
}

// NewWikidataSourceWithProvider injects a custom provider, for tests.
func NewWikidataSourceWithProvider(provider SPARQLProvider, language string, logger *slog.Logger) *WikidataSource {
	return &WikidataSource{
		provider: provider,
		language: language,
		logger:   logger.With("source", "wikidata"),
	}
}

func (s *WikidataSource) Name() string { return "Wikidata" }

// GetData runs the proximity query once; the SPARQL radius is kilometers.
func (s *WikidataSource) GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error) {
	resp, err := s.provider.QueryAttractions(ctx, coords.Latitude, coords.Longitude, float64(radiusMeters)/1000.0, s.language)
	if err != nil {
		return nil, err
	}

	seen := make(map[wikidataPlace]struct{})
	var places []wikidataPlace
	for _, binding := range resp.Results.Bindings {
		place, ok := parseBinding(binding)
		if !ok {
			s.logger.Warn("skipping binding without coordinates", "item", binding.Item.Value)
			continue
		}
		if _, dup := seen[place]; dup {
			continue
		}
		seen[place] = struct{}{}
		places = append(places, place)
	}

	points := make([]types.Point, 0, len(places))
	for _, place := range places {
		description := ""
		if place.instanceOf != "" {
			description = fmt.Sprintf("Instance of: %s\n\n", place.instanceOf)
		}
		description += "Wikidata Item: " + place.itemUrl

		points = append(points, types.Point{
			Name:        place.label,
			Coordinates: types.NewCoords(place.latitude, place.longitude),
			Description: description,
		})
	}

	return points, nil
}

// parseBinding extracts one place from a SPARQL binding; a binding whose
// coordinates do not resolve is unusable.
func parseBinding(binding wikidata.Binding) (wikidataPlace, bool) {
	latitude, latErr := strconv.ParseFloat(binding.Lat.Value, 64)
	longitude, lonErr := strconv.ParseFloat(binding.Lon.Value, 64)
	if latErr != nil || lonErr != nil {
		return wikidataPlace{}, false
	}

	label := "Unknown"
	if binding.ItemLabel != nil && binding.ItemLabel.Value != "" {
		label = binding.ItemLabel.Value
	}

	instanceOf := ""
	if binding.InstanceOfLabels != nil {
		instanceOf = binding.InstanceOfLabels.Value
	}

	return wikidataPlace{
		label:      label,
		latitude:   latitude,
		longitude:  longitude,
		itemUrl:    binding.Item.Value,
		instanceOf: instanceOf,
	}, true
}
