package core

import (
	"fmt"
	"slices"
)

// NeighborCache memoizes neighbor sets for the lifetime of the process.
//
// Entries are never evicted, not even when the displayed plane changes.
// Configurations from different planes cannot share a key because their sums
// differ, so every stored neighbor must have the same sum as its key. The
// cache checks this on every insert and panics with ErrInvariant if it is
// ever violated.
//
// The cache is not safe for concurrent use; the explorer drives it from a
// single event loop.
type NeighborCache struct {
	rule    Rule
	entries map[Config]NeighborSet
	metrics *CacheMetrics
}

// NewNeighborCache returns an empty cache. A nil rule selects Fire and nil
// metrics disables instrumentation.
func NewNeighborCache(rule Rule, metrics *CacheMetrics) *NeighborCache {
	if rule == nil {
		rule = Fire
	}
	return &NeighborCache{
		rule:    rule,
		entries: make(map[Config]NeighborSet),
		metrics: metrics,
	}
}

// Has reports whether c already has an entry. It never computes.
func (nc *NeighborCache) Has(c Config) bool {
	_, ok := nc.entries[c]
	return ok
}

// Len returns the number of memoized configurations.
func (nc *NeighborCache) Len() int { return len(nc.entries) }

// GetOrCompute returns the neighbors of c, evaluating the rule only the first
// time c is seen. The caller owns the returned copy.
func (nc *NeighborCache) GetOrCompute(c Config) NeighborSet {
	if n, ok := nc.entries[c]; ok {
		nc.metrics.hit()
		return slices.Clone(n)
	}
	nc.metrics.miss()
	nc.store(c, nc.rule(c))
	return slices.Clone(nc.entries[c])
}

// Put stores a precomputed neighbor set. Storing a different set for a key
// that is already present is an invariant violation.
func (nc *NeighborCache) Put(c Config, neighbors NeighborSet) {
	if prev, ok := nc.entries[c]; ok {
		if !prev.Equal(neighbors) {
			panic(fmt.Errorf("%w: conflicting neighbor sets for %v: %v vs %v", ErrInvariant, c, prev, neighbors))
		}
		return
	}
	nc.store(c, neighbors)
}

func (nc *NeighborCache) store(c Config, neighbors NeighborSet) {
	if err := CheckNeighbors(c, neighbors); err != nil {
		panic(err)
	}
	if neighbors == nil {
		neighbors = NeighborSet{}
	}
	nc.entries[c] = slices.Clone(neighbors)
	nc.metrics.setEntries(len(nc.entries))
}

// CheckNeighbors verifies that every neighbor lies on the same plane as c.
func CheckNeighbors(c Config, neighbors NeighborSet) error {
	sum := c.Sum()
	for _, n := range neighbors {
		if n.Sum() != sum {
			return fmt.Errorf("%w: neighbor %v of %v leaves plane %d", ErrInvariant, n, c, sum)
		}
		if !n.Valid() {
			return fmt.Errorf("%w: neighbor %v of %v has negative chips", ErrInvariant, n, c)
		}
	}
	return nil
}
