package charm

import (
	"errors"
	"flag"
	"io"
	"strings"
)

type instance struct {
	spec    *Spec
	command Command
	flags   *flag.FlagSet
}

type path []instance

func (p path) last() instance {
	return p[len(p)-1]
}

func (p path) run(args []string) error {
	return p.last().command.Run(args)
}

func (p path) names() string {
	var names []string
	for _, inst := range p {
		names = append(names, inst.spec.Name)
	}
	return strings.Join(names, " ")
}

func newFlagSet(spec *Spec, help, hidden *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(spec.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(help, "h", false, "display help")
	fs.BoolVar(help, "help", false, "display help")
	fs.BoolVar(hidden, "hidden", false, "show hidden options")
	return fs
}

// parse walks args down the command tree creating each command along the
// way.  It also reports whether -hidden was given to any command.
func parse(spec *Spec, args []string, parent Command) (path, []string, bool, error) {
	var out path
	var showHidden bool
	for {
		var help, hidden bool
		fs := newFlagSet(spec, &help, &hidden)
		cmd, err := spec.New(parent, fs)
		if err != nil {
			return nil, nil, false, err
		}
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return append(out, instance{spec, cmd, fs}), nil, showHidden, NeedHelp
			}
			return nil, nil, false, err
		}
		showHidden = showHidden || hidden
		out = append(out, instance{spec, cmd, fs})
		if help {
			return out, nil, showHidden, NeedHelp
		}
		rest := fs.Args()
		if len(rest) > 0 {
			if child := spec.lookupSub(rest[0]); child != nil {
				spec, parent, args = child, cmd, rest[1:]
				continue
			}
		}
		return out, rest, showHidden, nil
	}
}

// parseHelp builds the path named by the non-flag words of args without
// parsing any flags so that help can be shown for a command line that
// does not parse.
func parseHelp(spec *Spec, args []string) (path, error) {
	var out path
	var parent Command
	for {
		var help, hidden bool
		fs := newFlagSet(spec, &help, &hidden)
		cmd, err := spec.New(parent, fs)
		if err != nil {
			return nil, err
		}
		out = append(out, instance{spec, cmd, fs})
		var child *Spec
		for len(args) > 0 && child == nil {
			if !strings.HasPrefix(args[0], "-") {
				child = spec.lookupSub(args[0])
			}
			args = args[1:]
		}
		if child == nil {
			return out, nil
		}
		spec, parent = child, cmd
	}
}
