// Package metrics exposes prometheus metrics about the recaps served.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	SummariesGenerated *prometheus.CounterVec
	SummaryDuration    *prometheus.HistogramVec
	Diagnostics        *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	PlatformErrors     *prometheus.CounterVec
}

// New creates the metrics on their own registry so that tests can create as
// many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SummariesGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fantasy_recap_summaries_total",
				Help: "Number of weekly summaries generated by result",
			},
			[]string{"result"},
		),
		SummaryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fantasy_recap_summary_duration_seconds",
				Help:    "Time spent fetching league data and building a summary",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"result"},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fantasy_recap_diagnostics_total",
				Help: "Malformed records skipped while building summaries by metric",
			},
			[]string{"metric"},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fantasy_recap_cache_hits_total",
				Help: "Summaries served from the cache",
			},
		),
		CacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fantasy_recap_cache_misses_total",
				Help: "Summaries that had to be generated",
			},
		),
		PlatformErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fantasy_recap_platform_errors_total",
				Help: "Failed requests to the fantasy platform by collection",
			},
			[]string{"collection"},
		),
	}

	m.registry.MustRegister(
		m.SummariesGenerated,
		m.SummaryDuration,
		m.Diagnostics,
		m.CacheHits,
		m.CacheMisses,
		m.PlatformErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSummary records a finished summary request. result is "ok" or
// "error".
func (m *Metrics) ObserveSummary(result string, elapsed time.Duration) {
	m.SummariesGenerated.WithLabelValues(result).Inc()
	m.SummaryDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
