package column

import (
	"fmt"
	"slices"
	"strings"
)

// Range is the half-open row interval [From, To).
type Range struct {
	From uint32
	To   uint32
}

func (r Range) Len() uint32 {
	return r.To - r.From
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.From, r.To)
}

// SparseRange is an ordered set of disjoint, non-adjacent row ranges.
type SparseRange struct {
	ranges []Range
}

func NewSparseRange(ranges ...Range) SparseRange {
	var s SparseRange
	for _, r := range ranges {
		s.Add(r)
	}
	return s
}

// Add inserts r, coalescing it with any overlapping or adjacent ranges.
func (s *SparseRange) Add(r Range) {
	if r.From >= r.To {
		return
	}
	k, _ := slices.BinarySearchFunc(s.ranges, r, func(a, b Range) int {
		return int(int64(a.From) - int64(b.From))
	})
	s.ranges = slices.Insert(s.ranges, k, r)
	s.normalize()
}

func (s *SparseRange) normalize() {
	out := s.ranges[:0]
	for _, r := range s.ranges {
		if n := len(out); n > 0 && r.From <= out[n-1].To {
			out[n-1].To = max(out[n-1].To, r.To)
			continue
		}
		out = append(out, r)
	}
	s.ranges = out
}

func (s SparseRange) Ranges() []Range {
	return s.ranges
}

func (s SparseRange) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Span returns the number of rows in s.
func (s SparseRange) Span() uint32 {
	var n uint32
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

func (s SparseRange) Intersect(o SparseRange) SparseRange {
	var out SparseRange
	a, b := s.ranges, o.ranges
	for len(a) > 0 && len(b) > 0 {
		from := max(a[0].From, b[0].From)
		to := min(a[0].To, b[0].To)
		if from < to {
			out.ranges = append(out.ranges, Range{from, to})
		}
		if a[0].To < b[0].To {
			a = a[1:]
		} else {
			b = b[1:]
		}
	}
	return out
}

func (s SparseRange) Union(o SparseRange) SparseRange {
	out := SparseRange{ranges: append(slices.Clone(s.ranges), o.ranges...)}
	slices.SortFunc(out.ranges, func(a, b Range) int {
		return int(int64(a.From) - int64(b.From))
	})
	if len(out.ranges) > 0 {
		out.normalize()
	}
	return out
}

func (s SparseRange) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
