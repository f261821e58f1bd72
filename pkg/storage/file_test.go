package storage

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemPutCreatesDirectories(t *testing.T) {
	e := NewFileSystem()
	path := filepath.Join(t.TempDir(), "a", "b", "file.txt")
	require.NoError(t, Put(t.Context(), e, path, []byte("hello\n")))
	ok, err := e.Exists(t.Context(), path)
	require.NoError(t, err)
	assert.True(t, ok)
	b, err := Get(t.Context(), e, path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))
}

func TestFileSystemPutTruncates(t *testing.T) {
	e := NewFileSystem()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, Put(t.Context(), e, path, []byte("a longer line\n")))
	require.NoError(t, Put(t.Context(), e, path, []byte("short\n")))
	b, err := Get(t.Context(), e, path)
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(b))
}

func TestFileSystemMissingFile(t *testing.T) {
	e := NewFileSystem()
	path := filepath.Join(t.TempDir(), "missing.txt")
	ok, err := e.Exists(t.Context(), path)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = Get(t.Context(), e, path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, path)
	err = e.Delete(t.Context(), path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
