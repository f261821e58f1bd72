package semantic

import (
	"testing"

	"github.com/brimdata/wcgen/compiler/parser"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(src string) (*Environment, error) {
	lists, err := sexpr.ParseString("test.scm", src)
	if err != nil {
		return nil, err
	}
	return Build(lists)
}

func TestBuild(t *testing.T) {
	env, err := build(`
(output c++ generated)
(struct Player (fields (Stats stats) (Item[] items)))
()
(enum Item Sword Shield)
(struct Stats (fields (i32 hp)))
(fn spawn ((string name)) Player)
`)
	require.NoError(t, err)
	require.Len(t, env.Structs, 2)
	assert.Equal(t, "Player", env.Structs[0].Name)
	assert.Equal(t, "Stats", env.Structs[1].Name)
	require.Len(t, env.Enums, 1)
	require.Len(t, env.Functions, 1)
	require.Len(t, env.Outputs, 1)
	assert.Equal(t, "generated", env.Outputs[0].Folder)
	s, ok := env.Struct("Stats")
	require.True(t, ok)
	assert.Equal(t, "Stats", s.Name)
	_, ok = env.Struct("Item")
	assert.False(t, ok)
	_, ok = env.Enum("Item")
	assert.True(t, ok)
	_, ok = env.Function("spawn")
	assert.True(t, ok)
}

func TestBuildEmpty(t *testing.T) {
	env, err := build("; nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, env.Structs)
	assert.Empty(t, env.Outputs)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		msg  string
	}{
		{
			name: "unknown type",
			src:  "(struct A (fields (B b)))",
			err:  ErrUnknownType,
			msg:  `unknown type "B"`,
		},
		{
			name: "unknown list element",
			src:  "(struct A (fields (i32 x))) (fn f ((Bs[] bs)) void)",
			err:  ErrUnknownType,
			msg:  `unknown type "Bs"`,
		},
		{
			name: "unknown return type",
			src:  "(fn f () Missing)",
			err:  ErrUnknownType,
			msg:  `unknown type "Missing"`,
		},
		{
			name: "function is not a type",
			src:  "(fn g () void) (fn f ((g x)) void)",
			err:  ErrUnknownType,
			msg:  `unknown type "g"`,
		},
		{
			name: "duplicate struct",
			src:  "(struct A) (struct A)",
			err:  ErrDuplicateDefinition,
			msg:  `duplicate struct "A"`,
		},
		{
			name: "duplicate enum",
			src:  "(enum E X) (enum E Y)",
			err:  ErrDuplicateDefinition,
			msg:  `duplicate enum "E"`,
		},
		{
			name: "duplicate function",
			src:  "(fn f () void) (fn f () i32)",
			err:  ErrDuplicateDefinition,
			msg:  `duplicate function "f"`,
		},
		{
			name: "struct and enum",
			src:  "(enum Shape Circle) (struct Shape)",
			err:  ErrNameCollision,
			msg:  `struct "Shape" has the same name as an enum`,
		},
		{
			name: "enum and function",
			src:  "(fn draw () void) (enum draw A)",
			err:  ErrNameCollision,
			msg:  `enum "draw" has the same name as a function`,
		},
		{
			name: "struct and function",
			src:  "(fn Point () void) (struct Point)",
			err:  ErrNameCollision,
			msg:  `struct "Point" has the same name as a function`,
		},
		{
			name: "collision before unknown type",
			src:  "(struct A (fields (Missing m))) (enum A X)",
			err:  ErrNameCollision,
			msg:  `struct "A" has the same name as an enum`,
		},
		{
			name: "parse error",
			src:  "(struct A (fields (i32 a) (i32 a)))",
			err:  parser.ErrDuplicateField,
			msg:  `duplicate field "a"`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := build(c.src)
			require.ErrorIs(t, err, c.err)
			assert.ErrorContains(t, err, c.msg)
		})
	}
}

func TestBuildErrorLocation(t *testing.T) {
	_, err := build("(struct A)\n(struct B (fields (C c)))\n")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.ErrorContains(t, err, "in test.scm at line 2, column 19:\n(struct B (fields (C c)))\n                  ~~~~~")
}
