package srcflags

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.SetFlags(fs)
	return &f, fs.Parse(args)
}

func TestDefaults(t *testing.T) {
	f, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Config{Source: ".", Ext: "scm"}, f.Config)
}

func TestConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: schema\next: wc\noutput: gen\n"), 0644))
	f, err := parse(t, "-config", path, "-ext", "lisp")
	require.NoError(t, err)
	assert.Equal(t, Config{Source: "schema", Ext: "lisp", Output: "gen"}, f.Config)
}

func TestConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: schema\n"), 0644))
	_, err := parse(t, "-config", path)
	assert.ErrorContains(t, err, "sources")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.scm"), []byte("(struct A (fields (B b)))\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.scm"), []byte("(struct B (fields (i32 x)))\n"), 0644))
	f, err := parse(t, "-I", dir)
	require.NoError(t, err)
	env, err := f.Load()
	require.NoError(t, err)
	require.Len(t, env.Structs, 2)
	assert.Equal(t, "A", env.Structs[0].Name)
}
