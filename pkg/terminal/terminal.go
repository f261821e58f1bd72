package terminal

import (
	"os"

	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type Color string

const (
	Red   Color = "\x1b[31m"
	reset       = "\x1b[0m"
)

// Colorize wraps s in c when enabled is true.
func (c Color) Colorize(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return string(c) + s + reset
}
