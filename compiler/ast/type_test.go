package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareTypes(t *testing.T) {
	point := &Named{Name: "Point"}
	ordered := []Type{I8, U64, Bool, Void, &Named{Name: "A"}, point, &List{Elem: I32}, &List{Elem: point}}
	for i := range ordered {
		for j := range ordered {
			assert.Equal(t, compareInts(i, j), CompareTypes(ordered[i], ordered[j]), "%s vs %s", TypeString(ordered[i]), TypeString(ordered[j]))
		}
	}
	assert.True(t, EqualTypes(&List{Elem: &Named{Name: "Point"}}, &List{Elem: point}))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestNamedOf(t *testing.T) {
	name, ok := NamedOf(&List{Elem: &List{Elem: &Named{Name: "Item"}}})
	assert.True(t, ok)
	assert.Equal(t, "Item", name)
	_, ok = NamedOf(&List{Elem: String})
	assert.False(t, ok)
}

func TestLookupPrimitive(t *testing.T) {
	p, ok := LookupPrimitive("f32")
	assert.True(t, ok)
	assert.Equal(t, Float, p)
	assert.False(t, Float.IsInteger())
	assert.True(t, U64.IsInteger())
	_, ok = LookupPrimitive("float")
	assert.False(t, ok)
}
