package diff

import (
	"flag"
	"fmt"
	"os"

	"github.com/brimdata/wcgen/cmd/wcgen/root"
	"github.com/brimdata/wcgen/compiler"
	"github.com/brimdata/wcgen/pkg/charm"
	"github.com/brimdata/wcgen/pkg/storage"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "diff",
	Usage: "diff [ -o dir ]",
	Short: "show what gen would change",
	Long: `
The diff command plans every output like gen does and prints a unified
diff for each file gen would create or change.  Nothing is written.
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
	n, err := compiler.Diff(ctx, storage.NewFileSystem(), env, c.SrcFlags.Output, os.Stdout)
	if err != nil {
		return err
	}
	logger.Info("diff complete", zap.Int("files_changed", n))
	return nil
}
