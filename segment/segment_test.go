package segment_test

import (
	"context"
	"testing"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/segment"
	"github.com/brimdata/docflat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(n int) []int64 {
	vals := make([]int64, n)
	for k := range vals {
		vals[k] = int64(k)
	}
	return vals
}

func build(t *testing.T, conf segment.Config, cols map[string]vector.Any, deleted ...uint32) *segment.Segment {
	t.Helper()
	b := segment.NewBuilder(conf)
	for name, vec := range cols {
		require.NoError(t, b.Add(name, vec))
	}
	b.Delete(deleted...)
	seg, err := b.Build(context.Background())
	require.NoError(t, err)
	return seg
}

func iterator(t *testing.T, seg *segment.Segment, name string) column.Iterator {
	t.Helper()
	col, err := seg.Column(name)
	require.NoError(t, err)
	it := col.NewIterator()
	require.NoError(t, it.Init(nil))
	return it
}

func TestRoundTripTypes(t *testing.T) {
	nulls := vector.NewBoolFrom(false, true, false)
	seg := build(t, segment.Config{PageRows: 2}, map[string]vector.Any{
		"b": vector.NewBoolFrom(true, false, true),
		"i": vector.NewNullable(nulls, vector.NewInt(docflat.TypeInt32, []int64{-5, 0, 7})),
		"f": vector.NewFloat(docflat.TypeFloat64, []float64{1.5, -2, 1e300}),
		"s": vector.NewStringFrom("a", "", "ccc"),
		"j": vector.NewDocumentFrom(`{"a":1}`, "", `[1,2]`),
	})
	assert.Equal(t, uint32(3), seg.NumRows())
	assert.False(t, seg.ID().IsNil())
	expected := map[string][]any{
		"b": {true, false, true},
		"i": {int64(-5), nil, int64(7)},
		"f": {1.5, -2.0, 1e300},
		"s": {"a", "", "ccc"},
		"j": {vector.RawJSON(`{"a":1}`), nil, vector.RawJSON(`[1,2]`)},
	}
	for name, vals := range expected {
		col, err := seg.Column(name)
		require.NoError(t, err)
		var dst vector.Any = vector.New(col.Type())
		if col.Nullable() {
			dst = vector.NewNullableOf(col.Type())
		}
		it := iterator(t, seg, name)
		n, err := it.NextBatch(dst, 10)
		require.NoError(t, err)
		assert.Equal(t, uint32(3), n, name)
		assert.Equal(t, vals, vector.Values(dst), name)
		assert.Equal(t, uint32(3), it.CurrentOrdinal())
	}
}

func TestNullableIntoPlain(t *testing.T) {
	nulls := vector.NewBoolFrom(true, false)
	seg := build(t, segment.Config{}, map[string]vector.Any{
		"i": vector.NewNullable(nulls, vector.NewInt(docflat.TypeInt64, []int64{0, 4})),
	})
	dst := vector.NewIntEmpty(docflat.TypeInt64)
	_, err := iterator(t, seg, "i").NextBatch(dst, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 4}, dst.Values)
}

func TestBatchesAndSeek(t *testing.T) {
	seg := build(t, segment.Config{PageRows: 8}, map[string]vector.Any{
		"i": vector.NewInt(docflat.TypeInt64, ints(20)),
	})
	it := iterator(t, seg, "i")
	dst := vector.NewIntEmpty(docflat.TypeInt64)
	n, err := it.NextBatch(dst, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), n)
	n, err = it.NextBatch(dst, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), n)
	assert.Equal(t, ints(12), dst.Values)

	require.NoError(t, it.SeekToOrdinal(18))
	dst = vector.NewIntEmpty(docflat.TypeInt64)
	n, err = it.NextBatch(dst, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	assert.Equal(t, []int64{18, 19}, dst.Values)
	n, err = it.NextBatch(dst, 6)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, it.SeekToFirst())
	assert.Zero(t, it.CurrentOrdinal())
	require.ErrorIs(t, it.SeekToOrdinal(21), column.ErrRead)
	assert.Equal(t, uint32(20), it.NumRows())
}

func TestRangeAndRowID(t *testing.T) {
	seg := build(t, segment.Config{PageRows: 4}, map[string]vector.Any{
		"i": vector.NewInt(docflat.TypeInt64, ints(16)),
	})
	it := iterator(t, seg, "i")
	dst := vector.NewIntEmpty(docflat.TypeInt64)
	rng := column.NewSparseRange(column.Range{From: 2, To: 6}, column.Range{From: 10, To: 11})
	require.NoError(t, it.NextBatchRange(dst, rng))
	assert.Equal(t, []int64{2, 3, 4, 5, 10}, dst.Values)
	assert.Equal(t, uint32(11), it.CurrentOrdinal())

	dst = vector.NewIntEmpty(docflat.TypeInt64)
	require.NoError(t, it.FetchByRowID(dst, []uint32{15, 3, 4, 5, 0}))
	assert.Equal(t, []int64{15, 3, 4, 5, 0}, dst.Values)

	err := it.FetchByRowID(dst, []uint32{16})
	require.ErrorIs(t, err, column.ErrRead)
	require.ErrorIs(t, err, segment.ErrOutOfRange)
	err = it.NextBatchRange(dst, column.NewSparseRange(column.Range{From: 10, To: 17}))
	require.ErrorIs(t, err, segment.ErrOutOfRange)
}

func TestZoneMap(t *testing.T) {
	seg := build(t, segment.Config{PageRows: 10}, map[string]vector.Any{
		"i": vector.NewInt(docflat.TypeInt64, ints(40)),
	})
	col, err := seg.Column("i")
	require.NoError(t, err)
	zones := col.Zones()
	require.Len(t, zones, 4)
	assert.Equal(t, docflat.NewInt64(10), zones[1].Min)
	assert.Equal(t, docflat.NewInt64(19), zones[1].Max)

	it := iterator(t, seg, "i")
	var out column.SparseRange
	preds := []column.Predicate{column.NewCompare(column.GE, docflat.NewInt64(15)), column.NewCompare(column.LT, docflat.NewInt64(25))}
	require.NoError(t, it.RowRangesByZoneMap(preds, nil, column.And, &out))
	assert.Equal(t, "{[10,30)}", out.String())

	require.NoError(t, it.RowRangesByZoneMap(preds, nil, column.Or, &out))
	assert.Equal(t, "{[0,40)}", out.String())

	del := column.NewCompare(column.LT, docflat.NewInt64(20))
	require.NoError(t, it.RowRangesByZoneMap(nil, del, column.And, &out))
	assert.Equal(t, "{[20,40)}", out.String())
}

func TestDeleteState(t *testing.T) {
	seg := build(t, segment.Config{PageRows: 4}, map[string]vector.Any{
		"i": vector.NewInt(docflat.TypeInt64, ints(8)),
	}, 6)
	it := iterator(t, seg, "i")
	dst := vector.NewIntEmpty(docflat.TypeInt64)
	_, err := it.NextBatch(dst, 4)
	require.NoError(t, err)
	assert.Equal(t, vector.NoDelete, dst.DeleteState())
	_, err = it.NextBatch(dst, 4)
	require.NoError(t, err)
	assert.Equal(t, vector.MayHaveDelete, dst.DeleteState())
}

func TestBuilderErrors(t *testing.T) {
	b := segment.NewBuilder(segment.Config{})
	require.NoError(t, b.Add("a", vector.NewStringFrom("x")))
	require.ErrorIs(t, b.Add("a", vector.NewStringFrom("y")), segment.ErrColumnExists)
	require.Error(t, b.Add("b", vector.NewStringFrom("x", "y")))
	require.Error(t, b.Add("c", vector.NewConst(docflat.NewInt64(1), 1)))

	flat := vector.NewDocument()
	flat.InitFlat([]string{"$.a"}, []docflat.Type{docflat.TypeInt64})
	flat.AppendNulls(1)
	require.NoError(t, b.Add("d", flat))
	_, err := b.Build(context.Background())
	require.Error(t, err)
}

func TestReadErrors(t *testing.T) {
	seg := build(t, segment.Config{}, map[string]vector.Any{
		"s": vector.NewStringFrom("x"),
	})
	_, err := seg.Column("nope")
	require.ErrorIs(t, err, segment.ErrNoColumn)

	col, err := seg.Column("s")
	require.NoError(t, err)
	it := col.NewIterator()
	_, err = it.NextBatch(vector.NewStringEmpty(), 1)
	require.ErrorIs(t, err, segment.ErrNotInit)
	require.NoError(t, it.Init(nil))
	_, err = it.NextBatch(vector.NewIntEmpty(docflat.TypeInt64), 1)
	require.ErrorIs(t, err, column.ErrRead)
}
