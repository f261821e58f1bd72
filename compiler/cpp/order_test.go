package cpp

import (
	"testing"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(structs []*ast.Struct) []string {
	var out []string
	for _, s := range structs {
		out = append(out, s.Name)
	}
	return out
}

func TestOrder(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "declaration order",
			src:      "(struct A (fields (i32 x))) (struct B (fields (i32 y)))",
			expected: []string{"A", "B"},
		},
		{
			name:     "dependency first",
			src:      "(struct A (fields (B b))) (struct B (fields (i32 y)))",
			expected: []string{"B", "A"},
		},
		{
			name:     "chain",
			src:      "(struct A (fields (B b))) (struct B (fields (C c))) (struct C (fields (i32 z)))",
			expected: []string{"C", "B", "A"},
		},
		{
			name:     "list field",
			src:      "(struct Bag (fields (Item[][] items))) (struct Item (fields (string name)))",
			expected: []string{"Item", "Bag"},
		},
		{
			name:     "self reference",
			src:      "(struct Node (fields (Node next) (i32 value)))",
			expected: []string{"Node"},
		},
		{
			name:     "enum field ignored",
			src:      "(struct A (fields (Color c))) (enum Color Red Green) (struct B (fields (i32 x)))",
			expected: []string{"A", "B"},
		},
		{
			name:     "unrelated keep their place",
			src:      "(struct X (fields (i32 x))) (struct A (fields (C c))) (struct Y (fields (i32 y))) (struct C (fields (i32 z)))",
			expected: []string{"X", "Y", "C", "A"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := Order(build(t, c.src).Structs)
			require.NoError(t, err)
			assert.Equal(t, c.expected, names(out))
		})
	}
}

func TestOrderCycle(t *testing.T) {
	env := build(t, "(struct Ok (fields (i32 x))) (struct A (fields (B b))) (struct B (fields (A a)))")
	_, err := Order(env.Structs)
	require.ErrorIs(t, err, ErrCycle)
	assert.EqualError(t, err, "struct dependency cycle among A, B")
}
