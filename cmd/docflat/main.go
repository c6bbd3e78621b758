package main

import (
	"fmt"
	"os"

	"github.com/brimdata/docflat/cmd/docflat/root"
	_ "github.com/brimdata/docflat/cmd/docflat/scan"
)

func main() {
	if err := root.Docflat.Exec(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
