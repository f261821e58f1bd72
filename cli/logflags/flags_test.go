package logflags

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFlagsDefaults(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, zapcore.WarnLevel, f.Level)
	assert.Equal(t, FileModeAppend, f.Mode)
	assert.Equal(t, "stderr", f.Path)
}

func TestFlagsBadMode(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.SetFlags(fs)
	err := fs.Parse([]string{"-log.filemode", "sideways"})
	assert.ErrorContains(t, err, `unknown log file mode "sideways"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wcgen.log")
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-log.path", path, "-log.level", "info", "-log.filemode", "truncate"}))
	logger, err := f.Open()
	require.NoError(t, err)
	logger.Info("generating")
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"generating"`)
	assert.NotContains(t, string(b), "hidden")
}
