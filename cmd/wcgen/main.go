package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/wcgen/cmd/wcgen/check"
	_ "github.com/brimdata/wcgen/cmd/wcgen/diff"
	_ "github.com/brimdata/wcgen/cmd/wcgen/gen"
	"github.com/brimdata/wcgen/cmd/wcgen/root"
	"github.com/brimdata/wcgen/pkg/terminal"
)

func main() {
	if err := root.Wcgen.Exec(os.Args[1:]); err != nil {
		msg := terminal.Red.Colorize(err.Error(), terminal.IsTerminal(os.Stderr))
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
