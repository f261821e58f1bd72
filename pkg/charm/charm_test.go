package charm

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootCommand struct {
	dir string
	ran []string
}

func (r *rootCommand) Run(args []string) error {
	return NoRun(args)
}

type genCommand struct {
	*rootCommand
	out string
}

func (g *genCommand) Run(args []string) error {
	g.ran = append(g.ran, "gen:"+g.dir+":"+g.out)
	return nil
}

func newTree() (*Spec, *rootCommand) {
	root := &rootCommand{}
	rootSpec := &Spec{
		Name:  "tool",
		Usage: "tool [ options ] <command>",
		Short: "test tool",
		Long:  "A tool used to test the command tree.",
		New: func(_ Command, f *flag.FlagSet) (Command, error) {
			f.StringVar(&root.dir, "I", ".", "source directory")
			return root, nil
		},
	}
	rootSpec.Add(&Spec{
		Name:  "gen",
		Usage: "gen [ -o dir ]",
		Short: "generate",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			g := &genCommand{rootCommand: parent.(*rootCommand)}
			f.StringVar(&g.out, "o", "", "output directory")
			return g, nil
		},
	})
	rootSpec.Add(&Spec{
		Name:   "secret",
		Short:  "hidden command",
		Hidden: true,
		New: func(parent Command, _ *flag.FlagSet) (Command, error) {
			return parent, nil
		},
	})
	return rootSpec, root
}

func TestExecSubcommand(t *testing.T) {
	spec, root := newTree()
	require.NoError(t, spec.Exec([]string{"-I", "schema", "gen", "-o", "out"}))
	assert.Equal(t, []string{"gen:schema:out"}, root.ran)
}

func TestExecUnknownCommand(t *testing.T) {
	spec, _ := newTree()
	assert.ErrorIs(t, spec.Exec([]string{"bogus"}), ErrNoRun)
}

func TestExecBadFlag(t *testing.T) {
	spec, _ := newTree()
	assert.ErrorContains(t, spec.Exec([]string{"gen", "-x"}), "flag provided but not defined: -x")
}

func TestHelp(t *testing.T) {
	spec, _ := newTree()
	path, _, err := parse(spec, []string{"-h"})
	require.ErrorIs(t, err, NeedHelp)
	var b bytes.Buffer
	displayHelp(&b, path)
	help := b.String()
	assert.Contains(t, help, "NAME\n    tool - test tool\n")
	assert.Contains(t, help, "    -I source directory (default \".\")\n")
	assert.Contains(t, help, "    gen        generate\n")
	assert.NotContains(t, help, "secret")
	assert.Contains(t, help, "DESCRIPTION\n    A tool used to test the command tree.\n")
}

func TestHelpSubcommand(t *testing.T) {
	spec, _ := newTree()
	path, _, err := parse(spec, []string{"gen", "-help"})
	require.ErrorIs(t, err, NeedHelp)
	var b bytes.Buffer
	displayHelp(&b, path)
	assert.Contains(t, b.String(), "NAME\n    tool gen - generate\n")
	assert.Contains(t, b.String(), "    -o output directory\n")
}
