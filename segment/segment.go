// Package segment is an in-memory columnar segment.  Each column is cut into
// fixed-size pages that are encoded independently, carry a zone map, and are
// decoded on demand into a cache shared by all iterators of the segment.
package segment

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/vector"
	"github.com/hashicorp/golang-lru/arc/v2"
	"github.com/segmentio/ksuid"
)

var ErrNoColumn = errors.New("no such column")

type pageKey struct {
	column int
	page   int
}

type Segment struct {
	id       ksuid.KSUID
	numRows  uint32
	pageRows uint32
	columns  []*Column
	deleted  *roaring.Bitmap
	cache    *arc.ARCCache[pageKey, vector.Any]
}

func (s *Segment) ID() ksuid.KSUID {
	return s.id
}

func (s *Segment) NumRows() uint32 {
	return s.numRows
}

func (s *Segment) Columns() []string {
	names := make([]string, 0, len(s.columns))
	for _, c := range s.columns {
		names = append(names, c.name)
	}
	return names
}

func (s *Segment) Column(name string) (*Column, error) {
	for _, c := range s.columns {
		if c.name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %q in segment %s", ErrNoColumn, name, s.id)
}

// mayHaveDelete reports whether any row in [from, to) is deleted.
func (s *Segment) mayHaveDelete(from, to uint32) bool {
	if from >= to || s.deleted.IsEmpty() {
		return false
	}
	n := s.deleted.Rank(to - 1)
	if from > 0 {
		n -= s.deleted.Rank(from - 1)
	}
	return n > 0
}

func (s *Segment) load(c *Column, n int) (vector.Any, error) {
	key := pageKey{c.id, n}
	if vec, ok := s.cache.Get(key); ok {
		return vec, nil
	}
	vec, err := c.pages[n].decode(c.typ)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", c.name, err)
	}
	s.cache.Add(key, vec)
	return vec, nil
}

// Column is one stored column of a segment.  It implements column.Reader.
type Column struct {
	seg      *Segment
	id       int
	name     string
	typ      docflat.Type
	nullable bool
	pages    []*page
}

var _ column.Reader = (*Column)(nil)

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Type() docflat.Type {
	return c.typ
}

// Nullable returns true if the column stores a null-presence vector.
func (c *Column) Nullable() bool {
	return c.nullable
}

func (c *Column) NumRows() uint32 {
	return c.seg.numRows
}

// Zones returns the zone map of each page in row order.
func (c *Column) Zones() []column.Zone {
	zones := make([]column.Zone, 0, len(c.pages))
	for _, p := range c.pages {
		zones = append(zones, p.zone)
	}
	return zones
}

func (c *Column) NewIterator() column.Iterator {
	return &Iterator{col: c}
}
