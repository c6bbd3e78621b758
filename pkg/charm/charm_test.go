package charm

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct {
	verbose bool
}

func (*testRoot) Run(args []string) error {
	return NoRun(args)
}

type testLeaf struct {
	*testRoot
	n    int
	args []string
}

func (l *testLeaf) Run(args []string) error {
	l.args = args
	return nil
}

func testSpecs(leaf **testLeaf) *Spec {
	root := &Spec{
		Name:  "tool",
		Usage: "tool <command>",
		Short: "test tool",
		New: func(Command, *flag.FlagSet) (Command, error) {
			return &testRoot{}, nil
		},
	}
	root.Add(&Spec{
		Name:        "run",
		Usage:       "tool run [-n n] file",
		Short:       "run things",
		Long:        "Run runs things.",
		HiddenFlags: "secret",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			l := &testLeaf{testRoot: parent.(*testRoot)}
			f.IntVar(&l.n, "n", 1, "count")
			f.Bool("secret", false, "hidden flag")
			*leaf = l
			return l, nil
		},
	})
	return root
}

func TestExec(t *testing.T) {
	var leaf *testLeaf
	root := testSpecs(&leaf)
	require.NoError(t, root.Exec([]string{"run", "-n", "3", "a", "b"}))
	assert.Equal(t, 3, leaf.n)
	assert.Equal(t, []string{"a", "b"}, leaf.args)

	require.ErrorIs(t, root.Exec([]string{"nope"}), ErrNoRun)
	require.Error(t, root.Exec([]string{"run", "-bogus"}))
}

func TestHelp(t *testing.T) {
	var leaf *testLeaf
	p, err := parseHelp(testSpecs(&leaf), []string{"run", "-n", "3"})
	require.NoError(t, err)
	var b strings.Builder
	writeHelp(&b, p, false)
	out := b.String()
	assert.Contains(t, out, "tool run - run things")
	assert.Contains(t, out, "-n")
	assert.Contains(t, out, "Run runs things.")
	assert.NotContains(t, out, "secret")

	b.Reset()
	writeHelp(&b, p, true)
	assert.Contains(t, b.String(), "-secret")

	b.Reset()
	writeHelp(&b, p[:1], false)
	assert.Contains(t, b.String(), "COMMANDS")
}

func TestExecHidden(t *testing.T) {
	var leaf *testLeaf
	root := testSpecs(&leaf)
	path, rest, showHidden, err := parse(root, []string{"-hidden", "run", "x"}, nil)
	require.NoError(t, err)
	assert.True(t, showHidden)
	assert.Equal(t, "tool run", path.names())
	assert.Equal(t, []string{"x"}, rest)

	_, _, _, err = parse(root, []string{"run", "-h"}, nil)
	assert.ErrorIs(t, err, NeedHelp)
}
