package jsoncol

import (
	"fmt"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/runtime/expr/cast"
	"github.com/brimdata/docflat/vector"
	"go.uber.org/zap"
)

type evaluator interface {
	Eval(*vector.Batch) (vector.Any, error)
}

type compiler func(slot int, from, to docflat.Type) (evaluator, error)

func compileCast(slot int, from, to docflat.Type) (evaluator, error) {
	return cast.Compile(slot, from, to)
}

// castPlan converts one flat field from its stored type to the type the
// query expects.
type castPlan struct {
	expr    evaluator
	scratch vector.Any
}

// FlatIterator reads a document column whose paths were flattened into
// their own sub-columns when the segment was written.  It drives an
// optional null-presence iterator and one iterator per flat field in
// lock-step.
type FlatIterator struct {
	reader  column.Reader
	nulls   column.Iterator
	iters   []column.Iterator
	paths   []string
	targets []docflat.Type
	sources []docflat.Type
	path    *column.AccessPath
	compile compiler
	plans   []*castPlan
	logger  *zap.Logger
}

var _ column.Iterator = (*FlatIterator)(nil)

// NewFlatIterator returns an uninitialized FlatIterator.  nullIter may be
// nil when the column cannot hold nulls.  iters, paths, targets, and sources
// are parallel lists and NewFlatIterator panics with a column.Fault if their
// lengths differ or they are empty.
func NewFlatIterator(reader column.Reader, nullIter column.Iterator, iters []column.Iterator, paths []string, targets, sources []docflat.Type, path *column.AccessPath) column.Iterator {
	column.Check(len(iters) > 0, "no flat fields for %s", path.AbsolutePath())
	column.Check(len(paths) == len(iters) && len(targets) == len(iters) && len(sources) == len(iters),
		"flat field lists for %s differ in length: %d iterators, %d paths, %d target types, %d source types",
		path.AbsolutePath(), len(iters), len(paths), len(targets), len(sources))
	return &FlatIterator{
		reader:  reader,
		nulls:   nullIter,
		iters:   iters,
		paths:   paths,
		targets: targets,
		sources: sources,
		path:    path,
		compile: compileCast,
	}
}

func (f *FlatIterator) Init(opts *column.Options) error {
	f.logger = opts.Log().With(zap.String("path", f.path.AbsolutePath()))
	if f.nulls != nil {
		if err := f.nulls.Init(opts); err != nil {
			return column.InitError(err)
		}
	}
	for _, it := range f.iters {
		if err := it.Init(opts); err != nil {
			return column.InitError(err)
		}
	}
	if opts != nil && opts.Stats != nil {
		opts.Stats.FlatHits.Add(f.path.AbsolutePath(), 1)
	}
	f.plans = make([]*castPlan, len(f.iters))
	for k, source := range f.sources {
		target := f.targets[k]
		if source == target {
			continue
		}
		expr, err := f.compile(0, source, target)
		if err != nil {
			return fmt.Errorf("flat field %q: %w", f.paths[k], err)
		}
		f.plans[k] = &castPlan{expr: expr, scratch: vector.NewNullableOf(source)}
		f.logger.Debug("cast flat field",
			zap.String("field", f.paths[k]),
			zap.Stringer("from", source),
			zap.Stringer("to", target))
	}
	return nil
}

func (f *FlatIterator) NextBatch(dst vector.Any, n uint32) (uint32, error) {
	return f.readAndCast(dst, nextBatch(n))
}

func (f *FlatIterator) NextBatchRange(dst vector.Any, rng column.SparseRange) error {
	_, err := f.readAndCast(dst, batchRange(rng))
	return err
}

func (f *FlatIterator) FetchByRowID(dst vector.Any, rowids []uint32) error {
	_, err := f.readAndCast(dst, byRowID(rowids))
	return err
}

func (f *FlatIterator) readAndCast(dst vector.Any, read reader) (uint32, error) {
	nullable, _ := dst.(*vector.Nullable)
	nulls, values := vector.Split(dst)
	column.Check((f.nulls != nil) == (nulls != nil),
		"%s: null iterator present is %t but destination null-wrapped is %t", f.path.AbsolutePath(), f.nulls != nil, nulls != nil)
	doc, ok := values.(*vector.Document)
	column.Check(ok, "%s: destination %T is not a document vector", f.path.AbsolutePath(), values)
	count := -1
	tally := func(n uint32) {
		if count < 0 {
			count = int(n)
		}
		column.Check(count == int(n), "%s: sub-iterators read %d and %d rows", f.path.AbsolutePath(), count, n)
	}
	if f.nulls != nil {
		n, err := read(f.nulls, nulls)
		if err != nil {
			return 0, column.ReadError(err)
		}
		nullable.UpdateHasNull()
		tally(n)
	}
	initFlat(doc, f.paths, f.targets, f.path)
	for k, it := range f.iters {
		field := doc.Field(k)
		plan := f.plans[k]
		if plan == nil {
			n, err := read(it, field)
			if err != nil {
				return 0, column.ReadError(err)
			}
			tally(n)
			continue
		}
		scratch := plan.scratch.CloneEmpty()
		n, err := read(it, scratch)
		if err != nil {
			return 0, column.ReadError(err)
		}
		tally(n)
		batch := vector.NewBatch()
		batch.Put(0, scratch)
		result, err := plan.expr.Eval(batch)
		if err != nil {
			return 0, err
		}
		column.Check(result.Len() == n, "%s: cast of %q returned %d rows for %d", f.path.AbsolutePath(), f.paths[k], result.Len(), n)
		mergeDeleteState(field, scratch)
		appendResult(field, result)
	}
	for k, field := range doc.Fields() {
		mergeDeleteState(dst, field)
		column.Check(field.Len() == doc.Len(), "%s: flat field %q has %d rows, document has %d", f.path.AbsolutePath(), f.paths[k], field.Len(), doc.Len())
	}
	if nulls != nil {
		column.Check(nulls.Len() == doc.Len(), "%s: null column has %d rows, document has %d", f.path.AbsolutePath(), nulls.Len(), doc.Len())
	}
	return uint32(max(count, 0)), nil
}

func appendResult(field *vector.Nullable, result vector.Any) {
	switch {
	case vector.OnlyNull(result):
		field.AppendNulls(result.Len())
	case isConst(result):
		field.AppendValue(result.(*vector.Const).Value(), result.Len())
	default:
		field.Append(result, 0, result.Len())
	}
}

func isConst(vec vector.Any) bool {
	_, ok := vec.(*vector.Const)
	return ok
}

// SeekToFirst seeks the null iterator and then each field iterator.  On
// error the iterators are left at different positions.
func (f *FlatIterator) SeekToFirst() error {
	if f.nulls != nil {
		if err := f.nulls.SeekToFirst(); err != nil {
			return err
		}
	}
	for _, it := range f.iters {
		if err := it.SeekToFirst(); err != nil {
			return err
		}
	}
	return nil
}

func (f *FlatIterator) SeekToOrdinal(ord uint32) error {
	if f.nulls != nil {
		if err := f.nulls.SeekToOrdinal(ord); err != nil {
			return err
		}
	}
	for _, it := range f.iters {
		if err := it.SeekToOrdinal(ord); err != nil {
			return err
		}
	}
	return nil
}

func (f *FlatIterator) CurrentOrdinal() uint32 {
	return f.iters[0].CurrentOrdinal()
}

func (f *FlatIterator) NumRows() uint32 {
	return f.iters[0].NumRows()
}

// RowRangesByZoneMap never prunes since the flat fields carry no zone maps
// that describe the document as a whole.
func (f *FlatIterator) RowRangesByZoneMap(preds []column.Predicate, del column.Predicate, rel column.Relation, out *column.SparseRange) error {
	*out = column.NewSparseRange(column.Range{From: 0, To: f.reader.NumRows()})
	return nil
}
