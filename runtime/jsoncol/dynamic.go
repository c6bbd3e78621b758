package jsoncol

import (
	"fmt"
	"time"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/runtime/flatten"
	"github.com/brimdata/docflat/vector"
)

// DynamicFlatIterator reads a raw document column and flattens the requested
// paths of every batch as it is read.
type DynamicFlatIterator struct {
	iter      column.Iterator
	paths     []string
	targets   []docflat.Type
	path      *column.AccessPath
	flattener *flatten.Flattener
	stats     *column.Stats
}

var _ column.Iterator = (*DynamicFlatIterator)(nil)

// NewDynamicFlatIterator returns an uninitialized DynamicFlatIterator over
// the raw document iterator iter.  It panics with a column.Fault if paths
// and targets differ in length or are empty.
func NewDynamicFlatIterator(iter column.Iterator, paths []string, targets []docflat.Type, path *column.AccessPath) column.Iterator {
	column.Check(len(paths) > 0, "no flat fields for %s", path.AbsolutePath())
	column.Check(len(paths) == len(targets), "flat field lists for %s differ in length: %d paths, %d target types",
		path.AbsolutePath(), len(paths), len(targets))
	return &DynamicFlatIterator{
		iter:    iter,
		paths:   paths,
		targets: targets,
		path:    path,
	}
}

func (d *DynamicFlatIterator) Init(opts *column.Options) error {
	if err := d.iter.Init(opts); err != nil {
		return column.InitError(err)
	}
	flattener, err := flatten.New(d.paths, d.targets)
	if err != nil {
		return column.InitError(fmt.Errorf("%s: %w", d.path.AbsolutePath(), err))
	}
	d.flattener = flattener
	if opts != nil && opts.Stats != nil {
		d.stats = opts.Stats
		d.stats.DynamicHits.Add(d.path.AbsolutePath(), 1)
	}
	return nil
}

func (d *DynamicFlatIterator) NextBatch(dst vector.Any, n uint32) (uint32, error) {
	return d.readAndFlatten(dst, nextBatch(n))
}

func (d *DynamicFlatIterator) NextBatchRange(dst vector.Any, rng column.SparseRange) error {
	_, err := d.readAndFlatten(dst, batchRange(rng))
	return err
}

func (d *DynamicFlatIterator) FetchByRowID(dst vector.Any, rowids []uint32) error {
	_, err := d.readAndFlatten(dst, byRowID(rowids))
	return err
}

func (d *DynamicFlatIterator) readAndFlatten(dst vector.Any, read reader) (uint32, error) {
	proxy := dst.CloneEmpty()
	n, err := read(d.iter, proxy)
	if err != nil {
		return 0, column.ReadError(err)
	}
	mergeDeleteState(dst, proxy)
	values := dst
	if nullable, ok := dst.(*vector.Nullable); ok {
		src := proxy.(*vector.Nullable)
		nullable.Nulls.Append(src.Nulls, 0, src.Nulls.Len())
		nullable.SetHasNull(nullable.HasNull() || src.HasNull())
		values = nullable.Values
	}
	doc, ok := values.(*vector.Document)
	column.Check(ok, "%s: destination %T is not a document vector", d.path.AbsolutePath(), values)
	initFlat(doc, d.paths, d.targets, d.path)
	fields := make([]vector.Any, 0, len(d.paths))
	for _, f := range doc.Fields() {
		fields = append(fields, f)
	}
	start := time.Now()
	err = d.flattener.Flatten(proxy, fields)
	if d.stats != nil {
		d.stats.FlattenNanos.Add(int64(time.Since(start)))
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (d *DynamicFlatIterator) SeekToFirst() error {
	return d.iter.SeekToFirst()
}

func (d *DynamicFlatIterator) SeekToOrdinal(ord uint32) error {
	return d.iter.SeekToOrdinal(ord)
}

func (d *DynamicFlatIterator) CurrentOrdinal() uint32 {
	return d.iter.CurrentOrdinal()
}

func (d *DynamicFlatIterator) NumRows() uint32 {
	return d.iter.NumRows()
}

func (d *DynamicFlatIterator) RowRangesByZoneMap(preds []column.Predicate, del column.Predicate, rel column.Relation, out *column.SparseRange) error {
	return d.iter.RowRangesByZoneMap(preds, del, rel, out)
}
