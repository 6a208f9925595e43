package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the directive registry.
type Metrics struct {
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	Saved       prometheus.Counter
}

// New creates a Metrics instance with all registry metrics registered.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adcheck_directive_cache_hits_total",
			Help: "Directive registry cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adcheck_directive_cache_misses_total",
			Help: "Directive registry cache misses",
		}),
		Saved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adcheck_directives_saved_total",
			Help: "Directive records saved to the registry",
		}),
	}
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// RecordCacheMiss increments the cache miss counter.
func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

// RecordSaved increments the saved directives counter.
func (m *Metrics) RecordSaved() {
	if m != nil {
		m.Saved.Inc()
	}
}
