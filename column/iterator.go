// Package column defines the contract between the storage layer and the
// iterators that read one column of a segment in batches.
package column

//go:generate go tool mockgen -destination=mock/iterator.go -package=mock . Iterator

import (
	"github.com/brimdata/docflat/vector"
	"go.uber.org/zap"
)

// Iterator reads a column of a segment.  Reads append to the destination
// vector, which must have the shape the iterator produces (e.g., a Nullable
// for a nullable column).  An Iterator is not safe for concurrent use.
type Iterator interface {
	Init(*Options) error
	// NextBatch reads up to n rows at the current ordinal into dst and
	// returns the number of rows read.
	NextBatch(dst vector.Any, n uint32) (uint32, error)
	// NextBatchRange reads the rows selected by rng into dst.
	NextBatchRange(dst vector.Any, rng SparseRange) error
	// FetchByRowID reads the rows with the given ids into dst.
	FetchByRowID(dst vector.Any, rowids []uint32) error
	SeekToFirst() error
	SeekToOrdinal(ord uint32) error
	CurrentOrdinal() uint32
	NumRows() uint32
	// RowRangesByZoneMap sets out to the row ranges that may satisfy preds
	// combined with rel and that are not entirely removed by del, which
	// may be nil.
	RowRangesByZoneMap(preds []Predicate, del Predicate, rel Relation, out *SparseRange) error
}

// Reader is the per-column metadata of a segment.
type Reader interface {
	NumRows() uint32
}

type Options struct {
	Stats  *Stats
	Logger *zap.Logger
}

func (o *Options) Log() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
