// Package charm is a minimalist CLI framework inspired by cobra and urfave/cli.
//
// A command tree is a tree of Specs.  Exec walks the command line down the
// tree, constructing each command with a FlagSet that its Constructor
// populates, and runs the last command reached with the remaining
// arguments.  Flags belong to the command that registers them and are
// given after that command's name, e.g., "docflat -log.level debug scan
// -path a:int64 file".
package charm

import (
	"errors"
	"flag"
)

var (
	// NeedHelp is returned by Run to display help for its command.
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

// A Constructor creates a command from its parent and registers the
// command's flags in the FlagSet.
type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help unless -hidden is given.
	Hidden bool
	// HiddenFlags (comma-separated) hides these flags from help unless
	// -hidden is given.
	HiddenFlags string
	children    []*Spec
	parent      *Spec
}

func (s *Spec) Add(child *Spec) {
	s.children = append(s.children, child)
	child.parent = s
}

func (s *Spec) lookupSub(name string) *Spec {
	for _, child := range s.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// Exec parses args and runs the command they name.  Help is written to
// standard output for -h, -help, or a command returning NeedHelp.
func (s *Spec) Exec(args []string) error {
	path, rest, showHidden, err := parse(s, args, nil)
	if err == nil {
		err = path.run(rest)
	}
	if err == NeedHelp {
		path, err := parseHelp(s, args)
		if err != nil {
			return err
		}
		displayHelp(path, showHidden)
		return nil
	}
	return err
}

// NoRun is the Run method of a command that only has subcommands.
func NoRun(args []string) error {
	if len(args) == 0 {
		return NeedHelp
	}
	return ErrNoRun
}
