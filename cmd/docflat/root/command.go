package root

import (
	"flag"

	"github.com/brimdata/docflat/cli/logflags"
	"github.com/brimdata/docflat/pkg/charm"
	"go.uber.org/zap"
)

var Docflat = &charm.Spec{
	Name:  "docflat",
	Usage: "docflat <command> [options] [arguments...]",
	Short: "read document columns through flat fields",
	Long: `
The "docflat" command exercises the document column read path.  Documents
are loaded into an in-memory columnar segment and read back through
iterators that expose selected document paths as typed flat fields.

Logging options apply to every subcommand.
`,
	New: New,
}

type Command struct {
	logFlags logflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.logFlags.SetFlags(f)
	return c, nil
}

// Logger opens the logger configured by the logging flags.
func (c *Command) Logger() (*zap.Logger, error) {
	return c.logFlags.Open()
}

func (c *Command) Run(args []string) error {
	return charm.NoRun(args)
}
