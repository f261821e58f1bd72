package cpp

import (
	"testing"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "collides", Identifier("collides?"))
	assert.Equal(t, "max_hp", Identifier("max-hp"))
	assert.Equal(t, "hp", Identifier("hp"))
}

func TestType(t *testing.T) {
	cases := []struct {
		typ      ast.Type
		expected string
		def      string
	}{
		{ast.I8, "int8_t", "0"},
		{ast.I64, "int64_t", "0"},
		{ast.U16, "uint16_t", "0"},
		{ast.U32, "uint32_t", "0"},
		{ast.Bool, "bool", "false"},
		{ast.String, "std::string", "std::string()"},
		{ast.Float, "float", "0.0"},
		{ast.Void, "void", ""},
		{&ast.Named{Name: "Point"}, "Point", "Point()"},
		{&ast.List{Elem: ast.I32}, "std::vector<int32_t>", "std::vector<int32_t>()"},
		{&ast.List{Elem: &ast.List{Elem: &ast.Named{Name: "max-hp"}}}, "std::vector<std::vector<max_hp>>", "std::vector<std::vector<max_hp>>()"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Type(c.typ))
		assert.Equal(t, c.def, Default(c.typ))
	}
}

func TestIncludes(t *testing.T) {
	refs := []ast.TypeRef{
		{Type: &ast.List{Elem: &ast.Named{Name: "Item"}}},
		{Type: ast.String},
		{Type: ast.I32},
		{Type: ast.U8},
		{Type: &ast.Named{Name: "Player"}},
		{Type: &ast.Named{Name: "Item"}},
		{Type: ast.Bool},
	}
	expected := []string{
		`#include "Item.hpp"`,
		"#include <stdint.h>",
		"#include <string>",
		"#include <vector>",
	}
	assert.Equal(t, expected, Includes(refs, "Player.hpp"))
	assert.Empty(t, Includes([]ast.TypeRef{{Type: ast.Float}}, "Player.hpp"))
}
