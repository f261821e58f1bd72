package cpp

import (
	"testing"

	"github.com/brimdata/wcgen/compiler/semantic"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, src string) *semantic.Environment {
	t.Helper()
	lists, err := sexpr.ParseString("test.scm", src)
	require.NoError(t, err)
	env, err := semantic.Build(lists)
	require.NoError(t, err)
	return env
}

func plan(t *testing.T, src string) map[string]File {
	t.Helper()
	files, err := Plan(build(t, src))
	require.NoError(t, err)
	m := make(map[string]File)
	for _, f := range files {
		m[f.Path] = f
	}
	return m
}
