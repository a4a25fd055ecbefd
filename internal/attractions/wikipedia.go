package attractions

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"attractions-gpx/internal/providers/wikidata"
	"attractions-gpx/internal/types"
)

// WikipediaSource is the Wikidata query variant that keeps only items
// with Wikipedia articles and lists the article links in the description,
// preferred language first.
type WikipediaSource struct {
	provider SPARQLProvider
	language string
	logger   *slog.Logger
}

type wikipediaPlace struct {
	label      string
	latitude   float64
	longitude  float64
	sitelinks  string
	instanceOf string
}

func NewWikipediaSource(language string, logger *slog.Logger) *WikipediaSource {
	return NewWikipediaSourceWithProvider(wikidata.NewClient(logger), language, logger)
}

// NewWikipediaSourceWithProvider injects a custom provider, for tests.
func NewWikipediaSourceWithProvider(provider SPARQLProvider, language string, logger *slog.Logger) *WikipediaSource {
	return &WikipediaSource{
		provider: provider,
		language: language,
		logger:   logger.With("source", "wikipedia"),
	}
}

func (s *WikipediaSource) Name() string { return "Wikipedia" }

func (s *WikipediaSource) GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error) {
	resp, err := s.provider.QueryArticles(ctx, coords.Latitude, coords.Longitude, float64(radiusMeters)/1000.0, s.language)
	if err != nil {
		return nil, err
	}

	seen := make(map[wikipediaPlace]struct{})
	var places []wikipediaPlace
	for _, binding := range resp.Results.Bindings {
		base, ok := parseBinding(binding)
		if !ok {
			s.logger.Warn("skipping binding without coordinates", "item", binding.Item.Value)
			continue
		}

		place := wikipediaPlace{
			label:      base.label,
			latitude:   base.latitude,
			longitude:  base.longitude,
			instanceOf: base.instanceOf,
		}
		if binding.Sitelinks != nil {
			place.sitelinks = binding.Sitelinks.Value
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
		if place.sitelinks != "" {
			description = fmt.Sprintf("Instance of:\n%s; \n\nWikipedia articles:\n%s",
				place.instanceOf, formatArticleLinks(place.sitelinks, s.language))
		}

		points = append(points, types.Point{
			Name:        place.label,
			Coordinates: types.NewCoords(place.latitude, place.longitude),
			Description: description,
		})
	}

	return points, nil
}

// formatArticleLinks splits the comma-joined sitelink list and reorders
// it so articles in the preferred language come first, then English. The
// sort is stable, so the server order is kept otherwise.
func formatArticleLinks(sitelinks, language string) string {
	var links []string
	for _, link := range strings.Split(sitelinks, ", ") {
		if trimmed := strings.TrimSpace(link); trimmed != "" {
			links = append(links, trimmed)
		}
	}

	rank := func(link string) int {
		switch {
		case language != "" && strings.Contains(link, language+".wikipedia.org"):
			return 0
		case strings.Contains(link, "en.wikipedia.org"):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(links, func(i, j int) bool {
		return rank(links[i]) < rank(links[j])
	})

	return strings.Join(links, "\n\n")
}
