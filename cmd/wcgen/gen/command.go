package gen

import (
	"flag"
	"fmt"

	"github.com/brimdata/wcgen/cmd/wcgen/root"
	"github.com/brimdata/wcgen/compiler"
	"github.com/brimdata/wcgen/pkg/charm"
	"github.com/brimdata/wcgen/pkg/storage"
)

var spec = &charm.Spec{
	Name:  "gen",
	Usage: "gen [ -o dir ]",
	Short: "generate C++ sources",
	Long: `
The gen command checks the schema and writes every output it declares.
With -o, all outputs are written to the given directory instead of the
folders named by the schema's output definitions.
`,
	New: New,
}

func init() {
	root.Wcgen.Add(spec)
}

type Command struct {
	*root.Command
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	src := &c.SrcFlags
	f.StringVar(&src.Output, "o", src.Output, "directory overriding the folder of every output")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	ctx, logger, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	env, err := c.SrcFlags.Load()
	if err != nil {
		return err
	}
	return compiler.Run(ctx, logger, storage.NewFileSystem(), env, c.SrcFlags.Output)
}
