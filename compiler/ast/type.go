package ast

import (
	"cmp"
	"strings"
)

// Type is one of Primitive, *Named or *List.
type Type interface {
	typeNode()
}

type Primitive int

const (
	I8 Primitive = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	Bool
	String
	Float
	Void
)

var primitiveNames = [...]string{
	I8:     "i8",
	I16:    "i16",
	I32:    "i32",
	I64:    "i64",
	U8:     "u8",
	U16:    "u16",
	U32:    "u32",
	U64:    "u64",
	Bool:   "bool",
	String: "string",
	Float:  "f32",
	Void:   "void",
}

// LookupPrimitive returns the primitive named by keyword.
func LookupPrimitive(keyword string) (Primitive, bool) {
	for p, name := range primitiveNames {
		if name == keyword {
			return Primitive(p), true
		}
	}
	return 0, false
}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "unknown"
}

// IsInteger is true for the fixed-width signed and unsigned integers.
func (p Primitive) IsInteger() bool {
	return p <= U64
}

// Named refers to another definition (a struct or an enum) by name.
type Named struct {
	Name string
}

// List is a homogeneous list of Elem, written as Elem[].
type List struct {
	Elem Type
}

func (Primitive) typeNode() {}
func (*Named) typeNode()    {}
func (*List) typeNode()     {}

func (n *Named) String() string { return n.Name }
func (l *List) String() string  { return TypeString(l) }

// TypeString renders t in schema syntax.  It is the inverse of
// parser.ParseType.
func TypeString(t Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t Type) {
	switch t := t.(type) {
	case Primitive:
		b.WriteString(t.String())
	case *Named:
		b.WriteString(t.Name)
	case *List:
		writeType(b, t.Elem)
		b.WriteString("[]")
	}
}

// Inner strips every List layer from t.
func Inner(t Type) Type {
	for {
		l, ok := t.(*List)
		if !ok {
			return t
		}
		t = l.Elem
	}
}

// NamedOf returns the name of the definition t refers to once list
// nesting is removed.
func NamedOf(t Type) (string, bool) {
	if n, ok := Inner(t).(*Named); ok {
		return n.Name, true
	}
	return "", false
}

func EqualTypes(a, b Type) bool {
	return CompareTypes(a, b) == 0
}

// CompareTypes orders primitives (in declaration order) before named
// types before lists.  Named types compare by name and lists by element.
func CompareTypes(a, b Type) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Primitive:
		return cmp.Compare(a, b.(Primitive))
	case *Named:
		return strings.Compare(a.Name, b.(*Named).Name)
	case *List:
		return CompareTypes(a.Elem, b.(*List).Elem)
	}
	return 0
}

func rank(t Type) int {
	switch t.(type) {
	case Primitive:
		return 0
	case *Named:
		return 1
	case *List:
		return 2
	}
	return 3
}
