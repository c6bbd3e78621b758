package docflat_test

import (
	"testing"

	"github.com/brimdata/docflat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupType(t *testing.T) {
	cases := map[string]docflat.Type{
		"int64":   docflat.TypeInt64,
		"BIGINT":  docflat.TypeInt64,
		"varchar": docflat.TypeString,
		" json ":  docflat.TypeJSON,
		"double":  docflat.TypeFloat64,
	}
	for name, expected := range cases {
		typ, err := docflat.LookupType(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, typ, name)
	}
	_, err := docflat.LookupType("decimal")
	assert.Error(t, err)
}

func TestTypeUnmarshalText(t *testing.T) {
	var typ docflat.Type
	require.NoError(t, typ.UnmarshalText([]byte("smallint")))
	assert.Equal(t, docflat.TypeInt16, typ)
	b, err := typ.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "int16", string(b))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, docflat.Compare(docflat.NewInt64(1), docflat.NewInt64(2)))
	assert.Equal(t, 0, docflat.Compare(docflat.NewInt(docflat.TypeInt8, 3), docflat.NewInt64(3)))
	assert.Equal(t, 1, docflat.Compare(docflat.NewFloat64(2.5), docflat.NewInt64(2)))
	assert.Equal(t, -1, docflat.Compare(docflat.NewNull(docflat.TypeInt64), docflat.NewInt64(-10)))
	assert.Equal(t, 1, docflat.Compare(docflat.NewString("b"), docflat.NewString("a")))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "null", docflat.NewNull(docflat.TypeString).String())
	assert.Equal(t, `"x"`, docflat.NewString("x").String())
	assert.Equal(t, "true", docflat.NewBool(true).String())
	assert.Equal(t, "1.5", docflat.NewFloat64(1.5).String())
}
