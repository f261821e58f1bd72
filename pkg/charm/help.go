package charm

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/kr/text"
)

const lineWidth = 76

func displayHelp(w io.Writer, p path) {
	if len(p) == 0 {
		return
	}
	last := p[len(p)-1]
	spec := last.spec
	var names []string
	for _, inst := range p {
		names = append(names, inst.spec.Name)
	}
	fmt.Fprintf(w, "NAME\n    %s - %s\n\n", strings.Join(names, " "), spec.Short)
	fmt.Fprintf(w, "USAGE\n    %s\n\n", spec.Usage)
	if flags := formatFlags(p); flags != "" {
		fmt.Fprintf(w, "OPTIONS\n%s\n", flags)
	}
	if children := formatChildren(spec); children != "" {
		fmt.Fprintf(w, "COMMANDS\n%s\n", children)
	}
	if spec.Long != "" {
		long := text.Wrap(strings.TrimSpace(spec.Long), lineWidth)
		fmt.Fprintf(w, "DESCRIPTION\n%s\n", text.Indent(long, "    "))
	}
}

// formatFlags lists the flags of every command on p since a command line
// may set the flags of its parents.
func formatFlags(p path) string {
	var b strings.Builder
	for _, inst := range p {
		inst.flags.VisitAll(func(f *flag.Flag) {
			if f.Name == "h" || f.Name == "help" {
				return
			}
			fmt.Fprintf(&b, "    -%s %s", f.Name, f.Usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(&b, " (default %q)", f.DefValue)
			}
			b.WriteByte('\n')
		})
	}
	return b.String()
}

func formatChildren(spec *Spec) string {
	var b strings.Builder
	for _, child := range spec.children {
		if !child.Hidden {
			fmt.Fprintf(&b, "    %-10s %s\n", child.Name, child.Short)
		}
	}
	return b.String()
}
