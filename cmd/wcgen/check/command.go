package check

import (
	"flag"
	"fmt"

	"github.com/brimdata/wcgen/cmd/wcgen/root"
	"github.com/brimdata/wcgen/pkg/charm"
	"github.com/kr/pretty"
)

var spec = &charm.Spec{
	Name:  "check",
	Usage: "check [ -dump ]",
	Short: "check the schema without generating",
	Long: `
The check command parses and validates the schema and reports the first
error found.  With -dump, the checked definitions are printed.
`,
	New: New,
}

func init() {
	root.Wcgen.Add(spec)
}

type Command struct {
	*root.Command
	dump bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	f.BoolVar(&c.dump, "dump", false, "print the checked definitions")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	env, err := c.SrcFlags.Load()
	if err != nil {
		return err
	}
	if c.dump {
		for _, s := range env.Structs {
			fmt.Printf("%# v\n", pretty.Formatter(s))
		}
		for _, e := range env.Enums {
			fmt.Printf("%# v\n", pretty.Formatter(e))
		}
		for _, fn := range env.Functions {
			fmt.Printf("%# v\n", pretty.Formatter(fn))
		}
		for _, o := range env.Outputs {
			fmt.Printf("%# v\n", pretty.Formatter(o))
		}
	}
	return nil
}
