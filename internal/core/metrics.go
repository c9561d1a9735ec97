package core

import "github.com/prometheus/client_golang/prometheus"

// CacheMetrics counts neighbor cache traffic. A nil *CacheMetrics is valid
// and records nothing.
type CacheMetrics struct {
	Hits    prometheus.Counter
	Misses  prometheus.Counter
	Entries prometheus.Gauge
}

// NewCacheMetrics creates the cache collectors and registers them on reg when
// it is non-nil.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	m := &CacheMetrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chipfire",
			Subsystem: "neighbor_cache",
			Name:      "hits_total",
			Help:      "Neighbor lookups answered from the cache.",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chipfire",
			Subsystem: "neighbor_cache",
			Name:      "misses_total",
			Help:      "Neighbor lookups that evaluated the firing rule.",
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chipfire",
			Subsystem: "neighbor_cache",
			Name:      "entries",
			Help:      "Configurations currently memoized.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Hits, m.Misses, m.Entries)
	}
	return m
}

func (m *CacheMetrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *CacheMetrics) miss() {
	if m != nil {
		m.Misses.Inc()
	}
}

func (m *CacheMetrics) setEntries(n int) {
	if m != nil {
		m.Entries.Set(float64(n))
	}
}
