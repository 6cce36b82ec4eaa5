// internal/metrics/collector.go
package metrics

import (
	"sync"
	"time"
)

// Collector receives query observations from the property services. It is
// injected through constructors rather than reached as a package global so
// callers can swap in a Noop in tests or read a Registry back out.
type Collector interface {
	RecordSearch(listingType string, took time.Duration, matched int64)
	RecordLookup(listingType string, hit bool)
}

// Noop discards every observation.
type Noop struct{}

func (Noop) RecordSearch(string, time.Duration, int64) {}
func (Noop) RecordLookup(string, bool)                 {}

type SearchStats struct {
	Count        int64 `json:"count"`
	TotalMatched int64 `json:"totalMatched"`
	TotalMillis  int64 `json:"totalMillis"`
	MaxMillis    int64 `json:"maxMillis"`
}

type LookupStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

type Snapshot struct {
	Searches map[string]SearchStats `json:"searches"`
	Lookups  map[string]LookupStats `json:"lookups"`
}

// Registry is an in-process Collector keyed by listing type.
type Registry struct {
	mu       sync.Mutex
	searches map[string]*SearchStats
	lookups  map[string]*LookupStats
}

func NewRegistry() *Registry {
	return &Registry{
		searches: make(map[string]*SearchStats),
		lookups:  make(map[string]*LookupStats),
	}
}

func (r *Registry) RecordSearch(listingType string, took time.Duration, matched int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, exists := r.searches[listingType]
	if !exists {
		stats = &SearchStats{}
		r.searches[listingType] = stats
	}

	millis := took.Milliseconds()
	stats.Count++
	stats.TotalMatched += matched
	stats.TotalMillis += millis
	if millis > stats.MaxMillis {
		stats.MaxMillis = millis
	}
}

func (r *Registry) RecordLookup(listingType string, hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, exists := r.lookups[listingType]
	if !exists {
		stats = &LookupStats{}
		r.lookups[listingType] = stats
	}

	if hit {
		stats.Hits++
	} else {
		stats.Misses++
	}
}

// Snapshot copies the current counters for reporting.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Searches: make(map[string]SearchStats, len(r.searches)),
		Lookups:  make(map[string]LookupStats, len(r.lookups)),
	}
	for key, stats := range r.searches {
		snap.Searches[key] = *stats
	}
	for key, stats := range r.lookups {
		snap.Lookups[key] = *stats
	}
	return snap
}
