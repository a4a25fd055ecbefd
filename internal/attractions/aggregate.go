package attractions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"attractions-gpx/internal/metrics"
	"attractions-gpx/internal/types"
)

// Credentials are the per-request API keys for the keyed sources. They
// are injected by the caller; nothing in this package reads ambient
// configuration or storage.
type Credentials struct {
	GooglePlacesKey string
	TripAdvisorKey  string
}

// SourceResult reports one source's outcome as it completes.
type SourceResult struct {
	Source string
	Count  int
	Err    error
}

// Service aggregates attraction points across all sources for one request.
type Service interface {
	// Aggregate runs every source concurrently and returns the
	// concatenation of their results in a fixed source order. A failing
	// source contributes zero points and is reported through
	// onSourceComplete (which may be nil) without affecting its siblings.
	Aggregate(ctx context.Context, coords types.Coords, radiusMeters int, creds Credentials, onSourceComplete func(SourceResult)) []types.Point
}

type aggregatorService struct {
	newSources func(creds Credentials) []Source
	logger     *slog.Logger
}

// NewAggregatorService creates an aggregator over the four real sources:
// Google Places, TripAdvisor, OSM/Overpass and Wikidata, in that output
// order. language drives localized name selection where a source supports
// it.
func NewAggregatorService(language string, logger *slog.Logger) Service {
	return NewAggregatorServiceWithSources(func(creds Credentials) []Source {
		return []Source{
			NewGoogleSource(creds.GooglePlacesKey, logger),
			NewTripAdvisorSource(creds.TripAdvisorKey, logger),
			NewOsmSource(language, logger),
			NewWikidataSource(language, logger),
		}
	}, logger)
}

// NewAggregatorServiceWithSources injects a source factory, for tests.
func NewAggregatorServiceWithSources(newSources func(creds Credentials) []Source, logger *slog.Logger) Service {
	return &aggregatorService{
		newSources: newSources,
		logger:     logger.With("component", "aggregator"),
	}
}

func (s *aggregatorService) Aggregate(ctx context.Context, coords types.Coords, radiusMeters int, creds Credentials, onSourceComplete func(SourceResult)) []types.Point {
	sources := s.newSources(creds)

	var (
		wg         sync.WaitGroup
		callbackMu sync.Mutex
	)
	results := make([][]types.Point, len(sources))

	wg.Add(len(sources))
	for i, source := range sources {
		go func(slot int, source Source) {
			defer wg.Done()

			start := time.Now()
			points, err := source.GetData(ctx, coords, radiusMeters)
			metrics.ObserveFetchDuration(source.Name(), time.Since(start))

			if err != nil {
				metrics.FetchErrors.WithLabelValues(source.Name()).Inc()
				s.logger.Warn("source failed",
					"source", source.Name(),
					"error", err,
				)
				points = nil
			} else {
				metrics.PointsFetched.WithLabelValues(source.Name()).Add(float64(len(points)))
				s.logger.Info("source complete",
					"source", source.Name(),
					"point_count", len(points),
				)
			}

			results[slot] = points

			if onSourceComplete != nil {
				callbackMu.Lock()
				onSourceComplete(SourceResult{Source: source.Name(), Count: len(points), Err: err})
				callbackMu.Unlock()
			}
		}(i, source)
	}
	wg.Wait()

	var allPoints []types.Point
	for _, points := range results {
		allPoints = append(allPoints, points...)
	}

	return allPoints
}
