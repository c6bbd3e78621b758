package charm

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

func displayHelp(p path, showHidden bool) {
	writeHelp(os.Stdout, p, showHidden)
}

func writeHelp(w io.Writer, p path, showHidden bool) {
	inst := p.last()
	spec := inst.spec
	fmt.Fprintf(w, "NAME\n    %s - %s\n\n", p.names(), spec.Short)
	fmt.Fprintf(w, "USAGE\n    %s\n\n", spec.Usage)
	hidden := strings.Split(spec.HiddenFlags, ",")
	var lines []string
	inst.flags.VisitAll(func(f *flag.Flag) {
		if f.Name == "hidden" || (!showHidden && slices.Contains(hidden, f.Name)) {
			return
		}
		line := fmt.Sprintf("    -%s\t%s", f.Name, f.Usage)
		if f.DefValue != "" {
			line += fmt.Sprintf(" (default %q)", f.DefValue)
		}
		lines = append(lines, line)
	})
	if len(lines) > 0 {
		fmt.Fprintln(w, "OPTIONS")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, line := range lines {
			fmt.Fprintln(tw, line)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	var children []*Spec
	for _, child := range spec.children {
		if showHidden || !child.Hidden {
			children = append(children, child)
		}
	}
	if len(children) > 0 {
		fmt.Fprintln(w, "COMMANDS")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, child := range children {
			fmt.Fprintf(tw, "    %s\t%s\n", child.Name, child.Short)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
	if long := strings.TrimSpace(spec.Long); long != "" {
		fmt.Fprintln(w, "DESCRIPTION")
		for _, line := range strings.Split(long, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
