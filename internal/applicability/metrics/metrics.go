package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for applicability evaluations.
type Metrics struct {
	// Verdicts by outcome
	Verdicts *prometheus.CounterVec

	// Duration of full batch comparisons
	ComparisonDuration prometheus.Histogram
}

// New creates a Metrics instance with all applicability metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "adcheck_applicability_verdicts_total",
			Help: "Total evaluation verdicts by outcome",
		}, []string{"verdict"}),

		ComparisonDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "adcheck_comparison_duration_seconds",
			Help:    "Duration of full batch comparisons",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

// IncrementVerdict records one evaluation verdict.
func (m *Metrics) IncrementVerdict(verdict string) {
	if m != nil {
		m.Verdicts.WithLabelValues(verdict).Inc()
	}
}

// ObserveComparisonDuration records the wall time of one batch comparison.
func (m *Metrics) ObserveComparisonDuration(d time.Duration) {
	if m != nil {
		m.ComparisonDuration.Observe(d.Seconds())
	}
}
