package parser

import (
	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
)

// ParseEnum parses
//
//	(enum Name Simple... (Shorthand type)... (Complex (type name)...)...)
func ParseEnum(list *sexpr.List) (*ast.Enum, error) {
	l, err := expectKeyword(list, ast.KeywordEnum)
	if err != nil {
		return nil, err
	}
	name, loc, err := popName(l, "enum name")
	if err != nil {
		return nil, err
	}
	e := &ast.Enum{Loc: loc, Name: name}
	for !l.IsEmpty() {
		var v *ast.Variant
		if l.FrontIsList() {
			sub, _ := l.PopList("complex variant")
			if v, err = parseComplexVariant(sub); err != nil {
				return nil, err
			}
		} else {
			name, loc, err := popName(l, "variant name")
			if err != nil {
				return nil, err
			}
			v = &ast.Variant{Loc: loc, Name: name}
		}
		if _, ok := e.Variant(v.Name); ok {
			return nil, l.Errorf(v, ErrDuplicateVariant, "duplicate variant %q", v.Name)
		}
		e.Variants = append(e.Variants, v)
	}
	return e, nil
}

func parseComplexVariant(l *sexpr.List) (*ast.Variant, error) {
	name, loc, err := popName(l, "variant name")
	if err != nil {
		return nil, err
	}
	v := &ast.Variant{Loc: loc, Name: name}
	if l.FrontIsAtom() {
		t, loc, err := popType(l, "complex variant type")
		if err != nil {
			return nil, err
		}
		if !l.IsEmpty() {
			return nil, l.Errorf(l.Peek(), ErrUnexpected, "complex variant %q without named fields must only have one value", name)
		}
		v.Values = []ast.Field{{Loc: loc, Name: "value", Type: t}}
		return v, nil
	}
	for !l.IsEmpty() {
		if v.Values, err = parseField(l, "variant field", v.Values, ErrDuplicateField); err != nil {
			return nil, err
		}
	}
	return v, nil
}
