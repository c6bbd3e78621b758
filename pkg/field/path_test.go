package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Path{
		"a":              {"a"},
		"$.a.b":          {"a", "b"},
		"a[0].b":         {"a", "[0]", "b"},
		`$.a."b.c"`:      {"a", "b.c"},
		`x[1][2]`:        {"x", "[1]", "[2]"},
		`"quoted"[3].z`:  {"quoted", "[3]", "z"},
	}
	for s, expected := range cases {
		path, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, path, s)
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "$", "$.", "a..b", "a.", `a."b`, "a[0"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "$", Path{}.String())
	assert.Equal(t, "a.b", Dotted("$.a.b").String())
	assert.Equal(t, `a[0]."b.c"`, Dotted(`a[0]."b.c"`).String())
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, Dotted("a.b.c").HasPrefix(Dotted("a.b")))
	assert.False(t, Dotted("a.b").HasPrefix(Dotted("a.b.c")))
	assert.True(t, Dotted("a").HasPrefix(nil))
}
