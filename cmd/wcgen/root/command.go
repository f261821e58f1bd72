package root

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/brimdata/wcgen/cli/logflags"
	"github.com/brimdata/wcgen/cli/srcflags"
	"github.com/brimdata/wcgen/pkg/charm"
	"go.uber.org/zap"
)

var Wcgen = &charm.Spec{
	Name:  "wcgen",
	Usage: "wcgen [ options ] <command>",
	Short: "generate C++ sources from wcgen schemas",
	Long: `
The "wcgen" command reads schema files describing structs, enums, free
functions and output targets, checks them, and generates C++ sources.

Schema files are found by walking the directory given with -I (the current
directory by default) for files with the extension given with -ext ("scm"
by default).  All files are read in path order and form a single schema, so
a definition may refer to a definition in any other file.

Generated headers and implementation files are rewritten on every run.
Files named <Struct>_custom_impl.cpp belong to you: wcgen only appends stubs
for member functions that do not have a body yet.
`,
	New: New,
}

type Command struct {
	SrcFlags srcflags.Flags
	LogFlags logflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SrcFlags.SetFlags(f)
	c.LogFlags.SetFlags(f)
	return c, nil
}

// Init returns a context canceled on interrupt and the configured
// logger.  cleanup must be called when the command finishes.
func (c *Command) Init() (context.Context, *zap.Logger, func(), error) {
	logger, err := c.LogFlags.Open()
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cleanup := func() {
		cancel()
		logger.Sync()
	}
	return ctx, logger, cleanup, nil
}

func (c *Command) Run(args []string) error {
	return charm.NoRun(args)
}
