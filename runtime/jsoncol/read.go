// Package jsoncol reads document columns whose paths are exposed as typed
// flat fields, either from precomputed flat sub-columns (FlatIterator) or by
// flattening the raw documents of each batch (DynamicFlatIterator).
package jsoncol

import (
	"slices"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/vector"
)

// reader is one of the three read modes of column.Iterator bound to its
// arguments so that a batch can be read the same way from every
// sub-iterator.
type reader func(it column.Iterator, dst vector.Any) (uint32, error)

func nextBatch(n uint32) reader {
	return func(it column.Iterator, dst vector.Any) (uint32, error) {
		return it.NextBatch(dst, n)
	}
}

func batchRange(rng column.SparseRange) reader {
	return func(it column.Iterator, dst vector.Any) (uint32, error) {
		before := dst.Len()
		if err := it.NextBatchRange(dst, rng); err != nil {
			return 0, err
		}
		return dst.Len() - before, nil
	}
}

func byRowID(rowids []uint32) reader {
	return func(it column.Iterator, dst vector.Any) (uint32, error) {
		before := dst.Len()
		if err := it.FetchByRowID(dst, rowids); err != nil {
			return 0, err
		}
		return dst.Len() - before, nil
	}
}

func mergeDeleteState(dst, src vector.Any) {
	if src.DeleteState() == vector.MayHaveDelete {
		dst.SetDeleteState(vector.MayHaveDelete)
	}
}

// initFlat prepares doc for the flat fields of one read.  A destination
// flattened with other descriptors or holding raw documents is a Fault.
func initFlat(doc *vector.Document, paths []string, types []docflat.Type, path *column.AccessPath) {
	if doc.IsFlat() {
		column.Check(slices.Equal(doc.Paths(), paths) && slices.Equal(doc.Types(), types),
			"%s: destination already flattened as %v", path.AbsolutePath(), doc.Paths())
	} else {
		column.Check(doc.Len() == 0, "%s: destination holds %d raw documents", path.AbsolutePath(), doc.Len())
	}
	doc.InitFlat(paths, types)
}
