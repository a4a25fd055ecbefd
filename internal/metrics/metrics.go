// Package metrics exposes Prometheus instrumentation for the attraction
// sources. Counters are registered through promauto at init time; the
// /metrics endpoint is wired in cmd/api.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PointsFetched counts normalized points returned per source, after
	// filtering and dedup.
	PointsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attractions",
		Subsystem: "source",
		Name:      "points_fetched_total",
		Help:      "Total attraction points returned per source after filtering",
	}, []string{"source"})

	// FetchErrors counts adapter-level failures per source.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attractions",
		Subsystem: "source",
		Name:      "fetch_errors_total",
		Help:      "Total source-level fetch failures",
	}, []string{"source"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "attractions",
		Subsystem: "source",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of one source's full grid traversal",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"source"})
)

// ObserveFetchDuration records how long one source's aggregation took.
func ObserveFetchDuration(source string, d time.Duration) {
	fetchDuration.WithLabelValues(source).Observe(d.Seconds())
}
