package column

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats accumulates scan statistics shared by the iterators of a query.
type Stats struct {
	// FlatHits counts document paths served from precomputed flat columns.
	FlatHits HitCounter
	// DynamicHits counts document paths flattened at read time.
	DynamicHits HitCounter
	// FlattenNanos is the time spent flattening documents at read time.
	FlattenNanos atomic.Int64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) FlattenTime() time.Duration {
	return time.Duration(s.FlattenNanos.Load())
}

// HitCounter is a set of counters keyed by absolute document path.  The
// zero value is ready to use and it is safe for concurrent use.
type HitCounter struct {
	m sync.Map
}

// Add atomically adds n to the counter for path, creating it if needed.
func (h *HitCounter) Add(path string, n int64) {
	v, ok := h.m.Load(path)
	if !ok {
		v, _ = h.m.LoadOrStore(path, new(atomic.Int64))
	}
	v.(*atomic.Int64).Add(n)
}

func (h *HitCounter) Get(path string) int64 {
	if v, ok := h.m.Load(path); ok {
		return v.(*atomic.Int64).Load()
	}
	return 0
}

func (h *HitCounter) Snapshot() map[string]int64 {
	out := make(map[string]int64)
	h.m.Range(func(k, v any) bool {
		out[k.(string)] = v.(*atomic.Int64).Load()
		return true
	})
	return out
}
