package cpp

import (
	"slices"
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
)

// Identifier maps a schema name to a C++ identifier.
func Identifier(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "-", "_"), "?", "")
}

// Type returns the C++ spelling of t.
func Type(t ast.Type) string {
	switch t := t.(type) {
	case ast.Primitive:
		switch t {
		case ast.I8, ast.I16, ast.I32, ast.I64:
			return "int" + bits(t) + "_t"
		case ast.U8, ast.U16, ast.U32, ast.U64:
			return "uint" + bits(t) + "_t"
		case ast.Bool:
			return "bool"
		case ast.String:
			return "std::string"
		case ast.Float:
			return "float"
		case ast.Void:
			return "void"
		}
	case *ast.Named:
		return Identifier(t.Name)
	case *ast.List:
		return "std::vector<" + Type(t.Elem) + ">"
	}
	panic("cpp: unknown type")
}

func bits(p ast.Primitive) string {
	return strings.TrimLeft(p.String(), "iu")
}

// Default returns an expression holding the zero value of t.
func Default(t ast.Type) string {
	switch t := t.(type) {
	case ast.Primitive:
		switch {
		case t.IsInteger():
			return "0"
		case t == ast.Bool:
			return "false"
		case t == ast.String:
			return "std::string()"
		case t == ast.Float:
			return "0.0"
		}
		return ""
	case *ast.Named:
		return Identifier(t.Name) + "()"
	case *ast.List:
		return Type(t) + "()"
	}
	panic("cpp: unknown type")
}

// Includes returns the sorted, deduplicated include lines needed by refs.
// The header named self is never included.
func Includes(refs []ast.TypeRef, self string) []string {
	var includes []string
	for _, ref := range refs {
		includes = appendIncludes(includes, ref.Type, self)
	}
	slices.Sort(includes)
	return slices.Compact(includes)
}

func appendIncludes(includes []string, t ast.Type, self string) []string {
	switch t := t.(type) {
	case ast.Primitive:
		switch {
		case t.IsInteger():
			includes = append(includes, "#include <stdint.h>")
		case t == ast.String:
			includes = append(includes, "#include <string>")
		}
	case *ast.Named:
		if header := Identifier(t.Name) + ".hpp"; header != self {
			includes = append(includes, "#include \""+header+"\"")
		}
	case *ast.List:
		includes = append(includes, "#include <vector>")
		includes = appendIncludes(includes, t.Elem, self)
	}
	return includes
}

// passing says how a value appears in a declaration.
type passing int

const (
	byValue passing = iota
	byReference
	byConstReference
	byPointer
)

// decl declares name with type t passed as p.
func decl(t ast.Type, p passing, name string) string {
	switch p {
	case byReference:
		return Type(t) + " &" + name
	case byConstReference:
		return "const " + Type(t) + " &" + name
	case byPointer:
		return Type(t) + " *" + name
	}
	return Type(t) + " " + name
}
