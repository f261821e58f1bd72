package srcfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSpan(t *testing.T) {
	l := FromString("a.scm", "(struct A)\n(struct B (fields (X x)))\n")
	err := l.NewError(`unknown type "X"`, 29, 34, nil)
	expected := `unknown type "X" in a.scm at line 2, column 19:
(struct B (fields (X x)))
                  ~~~~~`
	assert.Equal(t, expected, err.Error())
	name, line, col := err.Location()
	assert.Equal(t, "a.scm", name)
	assert.Equal(t, 2, line)
	assert.Equal(t, 19, col)
}

func TestErrorPoint(t *testing.T) {
	l := FromString("", "(output c++)")
	err := l.NewError("expected folder", 11, -1, nil)
	expected := `expected folder at line 1, column 12:
(output c++)
       === ^ ===`
	assert.Equal(t, expected, err.Error())
}

func TestErrorUnbound(t *testing.T) {
	sentinel := os.ErrInvalid
	err := &Error{Msg: "bad", Pos: 3, End: 4, Err: sentinel}
	assert.Equal(t, "bad", err.Error())
	assert.ErrorIs(t, err, sentinel)
	name, line, col := err.Location()
	assert.Equal(t, "", name)
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.scm"), []byte("(struct B)"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.scm"), []byte("(struct A)\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	l, err := Load(dir, "scm")
	require.NoError(t, err)
	require.Len(t, l.Files, 2)
	assert.Equal(t, filepath.Join(dir, "b.scm"), l.Files[0].Name)
	assert.Equal(t, filepath.Join(dir, "sub", "a.scm"), l.Files[1].Name)
	assert.Equal(t, "(struct B)\n(struct A)\n\n", l.Text)
	err = l.NewError("here", 11, 12, nil)
	assert.Contains(t, err.Error(), "in "+filepath.Join(dir, "sub", "a.scm")+" at line 1, column 1:\n(struct A)\n~")
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"), ".scm")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalization(t *testing.T) {
	// "e" followed by a combining acute accent composes to one rune.
	l := FromString("x.scm", "(struct Cafe\u0301)")
	assert.Equal(t, "(struct Caf\u00e9)", l.Text)
}
