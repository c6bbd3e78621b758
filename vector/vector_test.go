package vector_test

import (
	"testing"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableAppend(t *testing.T) {
	src := vector.NewNullable(vector.NewBoolFrom(false, true, false), vector.NewInt(docflat.TypeInt64, []int64{1, 0, 3}))
	require.True(t, src.HasNull())
	dst := vector.NewNullableOf(docflat.TypeInt64)
	dst.Append(src, 0, 1)
	assert.False(t, dst.HasNull())
	dst.Append(src, 1, 2)
	assert.True(t, dst.HasNull())
	dst.Append(vector.NewInt(docflat.TypeInt64, []int64{7}), 0, 1)
	assert.Equal(t, []any{int64(1), nil, int64(3), int64(7)}, vector.Values(dst))
}

func TestAppendConst(t *testing.T) {
	dst := vector.NewNullableOf(docflat.TypeString)
	dst.Append(vector.NewConst(docflat.NewString("x"), 2), 0, 2)
	dst.Append(vector.NewConst(docflat.NewNull(docflat.TypeString), 3), 0, 3)
	assert.EqualValues(t, 5, dst.Len())
	assert.Equal(t, []any{"x", "x", nil, nil, nil}, vector.Values(dst))
}

func TestAppendMismatchPanics(t *testing.T) {
	dst := vector.NewIntEmpty(docflat.TypeInt64)
	assert.Panics(t, func() {
		dst.Append(vector.NewStringFrom("a"), 0, 1)
	})
}

func TestDocumentInitFlat(t *testing.T) {
	doc := vector.NewDocument()
	paths := []string{"a", "b"}
	types := []docflat.Type{docflat.TypeInt64, docflat.TypeString}
	doc.InitFlat(paths, types)
	require.True(t, doc.IsFlat())
	doc.Field(0).AppendValue(docflat.NewInt64(1), 1)
	doc.Field(1).AppendNulls(1)
	doc.InitFlat(paths, types)
	assert.EqualValues(t, 1, doc.Len())
	assert.Equal(t, []any{map[string]any{"a": int64(1), "b": nil}}, vector.Values(doc))
	assert.Panics(t, func() {
		doc.InitFlat([]string{"c"}, []docflat.Type{docflat.TypeBool})
	})
	assert.Same(t, doc.Field(1), doc.LookupField("b"))
	assert.Nil(t, doc.LookupField("z"))
}

func TestDocumentRawCannotFlatten(t *testing.T) {
	doc := vector.NewDocumentFrom(`{"a":1}`)
	assert.Panics(t, func() {
		doc.InitFlat([]string{"a"}, []docflat.Type{docflat.TypeInt64})
	})
}

func TestCloneEmptyKeepsShape(t *testing.T) {
	vec := vector.NewNullable(vector.NewBoolFrom(true), vector.NewDocumentFrom(""))
	vec.SetDeleteState(vector.MayHaveDelete)
	clone := vec.CloneEmpty()
	nulls, values := vector.Split(clone)
	require.NotNil(t, nulls)
	assert.IsType(t, &vector.Document{}, values)
	assert.EqualValues(t, 0, clone.Len())
	assert.Equal(t, vector.NoDelete, clone.DeleteState())

	nulls, values = vector.Split(values)
	assert.Nil(t, nulls)
	assert.IsType(t, &vector.Document{}, values)
}

func TestOnlyNull(t *testing.T) {
	assert.True(t, vector.OnlyNull(vector.NewConst(docflat.NewNull(docflat.TypeInt32), 4)))
	assert.False(t, vector.OnlyNull(vector.NewConst(docflat.NewInt64(1), 4)))
	assert.False(t, vector.OnlyNull(vector.NewNullableOf(docflat.TypeInt32)))
}

func TestInterfaceRawDocument(t *testing.T) {
	doc := vector.NewDocumentFrom(`{"a":1}`, "")
	assert.Equal(t, []any{vector.RawJSON(`{"a":1}`), nil}, vector.Values(doc))
}
