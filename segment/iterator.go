package segment

import (
	"errors"
	"fmt"

	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/vector"
	"go.uber.org/zap"
)

var (
	ErrNotInit    = errors.New("iterator not initialized")
	ErrOutOfRange = errors.New("row out of range")
)

// Iterator reads a Column in batches.  A destination that is a Nullable
// receives the column's nulls; any other destination receives only values,
// with zero values at null rows.
type Iterator struct {
	col    *Column
	logger *zap.Logger
	ord    uint32
	init   bool
}

var _ column.Iterator = (*Iterator)(nil)

func (i *Iterator) Init(opts *column.Options) error {
	i.logger = opts.Log().With(zap.String("column", i.col.name))
	i.init = true
	return nil
}

func (i *Iterator) NextBatch(dst vector.Any, n uint32) (uint32, error) {
	if !i.init {
		return 0, column.ReadError(ErrNotInit)
	}
	n = min(n, i.col.NumRows()-i.ord)
	if err := i.read(dst, i.ord, n); err != nil {
		return 0, err
	}
	i.ord += n
	return n, nil
}

func (i *Iterator) NextBatchRange(dst vector.Any, rng column.SparseRange) error {
	if !i.init {
		return column.ReadError(ErrNotInit)
	}
	for _, r := range rng.Ranges() {
		if r.To > i.col.NumRows() {
			return column.ReadError(fmt.Errorf("%w: range %s of %d rows", ErrOutOfRange, r, i.col.NumRows()))
		}
		if err := i.read(dst, r.From, r.Len()); err != nil {
			return err
		}
		i.ord = r.To
	}
	return nil
}

func (i *Iterator) FetchByRowID(dst vector.Any, rowids []uint32) error {
	if !i.init {
		return column.ReadError(ErrNotInit)
	}
	for k := 0; k < len(rowids); {
		from := rowids[k]
		if from >= i.col.NumRows() {
			return column.ReadError(fmt.Errorf("%w: row id %d of %d rows", ErrOutOfRange, from, i.col.NumRows()))
		}
		// Read runs of consecutive row ids together.
		n := uint32(1)
		for k+int(n) < len(rowids) && rowids[k+int(n)] == from+n && from+n < i.col.NumRows() {
			n++
		}
		if err := i.read(dst, from, n); err != nil {
			return err
		}
		k += int(n)
	}
	return nil
}

func (i *Iterator) SeekToFirst() error {
	i.ord = 0
	return nil
}

func (i *Iterator) SeekToOrdinal(ord uint32) error {
	if ord > i.col.NumRows() {
		return column.ReadError(fmt.Errorf("%w: seek to %d of %d rows", ErrOutOfRange, ord, i.col.NumRows()))
	}
	i.ord = ord
	return nil
}

func (i *Iterator) CurrentOrdinal() uint32 {
	return i.ord
}

func (i *Iterator) NumRows() uint32 {
	return i.col.NumRows()
}

// RowRangesByZoneMap sets out to the rows of every page whose zone may match
// preds and that del does not entirely cover.
func (i *Iterator) RowRangesByZoneMap(preds []column.Predicate, del column.Predicate, rel column.Relation, out *column.SparseRange) error {
	var result column.SparseRange
	var pruned int
	for _, p := range i.col.pages {
		if !column.ZoneMayMatch(preds, rel, p.zone) || (del != nil && del.ZoneMustMatch(p.zone)) {
			pruned++
			continue
		}
		result.Add(column.Range{From: p.first, To: p.end()})
	}
	if i.logger != nil {
		i.logger.Debug("zone map", zap.Int("pages", len(i.col.pages)), zap.Int("pruned", pruned))
	}
	*out = result
	return nil
}

func (i *Iterator) read(dst vector.Any, from, n uint32) error {
	b, ok := dst.(vector.Builder)
	if !ok {
		return column.ReadError(fmt.Errorf("column %q: cannot read into %T", i.col.name, dst))
	}
	if dst.Type() != i.col.typ {
		return column.ReadError(fmt.Errorf("column %q: cannot read %s into %s vector", i.col.name, i.col.typ, dst.Type()))
	}
	_, nullable := dst.(*vector.Nullable)
	pageRows := i.col.seg.pageRows
	for row, end := from, from+n; row < end; {
		k := int(row / pageRows)
		vec, err := i.col.seg.load(i.col, k)
		if err != nil {
			return column.ReadError(err)
		}
		if !nullable {
			_, vec = vector.Split(vec)
		}
		p := i.col.pages[k]
		m := min(end, p.end()) - row
		b.Append(vec, row-p.first, m)
		row += m
	}
	if i.col.seg.mayHaveDelete(from, from+n) {
		dst.SetDeleteState(vector.MayHaveDelete)
	}
	return nil
}
