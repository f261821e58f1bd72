package cpp

import (
	"fmt"
	"strings"
)

type formatter struct {
	strings.Builder
}

func (f *formatter) write(format string, args ...any) {
	fmt.Fprintf(&f.Builder, format, args...)
}

// line writes one line indented by tabs.
func (f *formatter) line(tabs int, format string, args ...any) {
	f.WriteString(strings.Repeat("\t", tabs))
	f.write(format, args...)
	f.WriteByte('\n')
}
