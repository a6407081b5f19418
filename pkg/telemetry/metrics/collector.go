package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector manages the Prometheus metrics playlint exposes in watch
// mode: files linted, violations by rule, parse failures, and lint
// durations.
type Collector struct {
	registry *prometheus.Registry

	filesLinted  prometheus.Counter
	parseErrors  prometheus.Counter
	violations   *prometheus.CounterVec
	lintDuration prometheus.Histogram
}

// NewCollector creates a metrics collector registered against the given
// registry. If registry is nil, a fresh registry is used.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		filesLinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "playlint",
			Name:      "files_linted_total",
			Help:      "Total number of files linted.",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "playlint",
			Name:      "parse_errors_total",
			Help:      "Total number of files that failed to parse.",
		}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playlint",
			Name:      "violations_total",
			Help:      "Total style violations found, by rule.",
		}, []string{"rule"}),
		lintDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "playlint",
			Name:      "lint_duration_seconds",
			Help:      "Duration of single-file lint pipelines.",
			// Single-file lints are fast; buckets span 100µs to 1s.
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
	}

	registry.MustRegister(c.filesLinted, c.parseErrors, c.violations, c.lintDuration)
	return c
}

// RecordFile records metrics for one completed file pipeline.
func (c *Collector) RecordFile(duration time.Duration, parseFailed bool, violationsByRule map[string]int) {
	c.filesLinted.Inc()
	c.lintDuration.Observe(duration.Seconds())
	if parseFailed {
		c.parseErrors.Inc()
	}
	for rule, n := range violationsByRule {
		c.violations.WithLabelValues(rule).Add(float64(n))
	}
}
