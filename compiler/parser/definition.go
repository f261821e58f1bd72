// Package parser turns S-expression lists into typed definitions.
package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
)

// Keywords lists the definition kinds in the order ParseDefinition tries
// them.
var Keywords = []string{
	ast.KeywordStruct,
	ast.KeywordEnum,
	ast.KeywordFunction,
	ast.KeywordOutput,
}

// CanAttempt is true when the first element of list is the atom keyword.
func CanAttempt(list *sexpr.List, keyword string) bool {
	a, ok := list.Peek().(*sexpr.Atom)
	return ok && a.Text == keyword
}

// ParseDefinition parses list as the first definition kind whose keyword
// it starts with.  A failure to parse that kind is final.
func ParseDefinition(list *sexpr.List) (ast.Definition, error) {
	switch {
	case CanAttempt(list, ast.KeywordStruct):
		s, err := ParseStruct(list)
		if err != nil {
			return nil, err
		}
		return s, nil
	case CanAttempt(list, ast.KeywordEnum):
		e, err := ParseEnum(list)
		if err != nil {
			return nil, err
		}
		return e, nil
	case CanAttempt(list, ast.KeywordFunction):
		f, err := ParseFunction(list)
		if err != nil {
			return nil, err
		}
		return f, nil
	case CanAttempt(list, ast.KeywordOutput):
		o, err := ParseOutput(list)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	return nil, list.Errorf(list, ErrUnexpected, "expected enum, fn, output or struct, got %s", list)
}

// expectKeyword returns a consumable copy of list with keyword popped.
func expectKeyword(list *sexpr.List, keyword string) (*sexpr.List, error) {
	l := list.Copy()
	id, loc, err := l.PopAtom("type")
	if err != nil {
		return nil, err
	}
	if id != keyword {
		return nil, l.Errorf(loc, ErrUnexpected, "expected identifier %q", keyword)
	}
	return l, nil
}

func expectEnd(l *sexpr.List) error {
	if n := l.Peek(); n != nil {
		return l.Errorf(n, ErrUnexpected, "expected end of list, got %s", n)
	}
	return nil
}

// popName pops a definition, variant, field or parameter name.  A name
// starts with a letter or '_' and continues with letters, digits, '_',
// '-' or '?'.
func popName(l *sexpr.List, what string) (string, ast.Loc, error) {
	name, loc, err := l.PopAtom(what)
	if err != nil {
		return "", ast.Loc{}, err
	}
	if r, _ := utf8.DecodeRuneInString(name); name == "" || (!unicode.IsLetter(r) && r != '_') {
		return "", ast.Loc{}, l.Errorf(loc, ErrInvalidIdentifierStart, "invalid %s %q: %s", what, name, ErrInvalidIdentifierStart)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '?' {
			return "", ast.Loc{}, l.Errorf(loc, ErrInvalidName, "invalid %s %q: %s", what, name, ErrInvalidName)
		}
	}
	return name, loc, nil
}

// parseField pops a (type name) pair from l and appends it to fields.
// what names the kind of field in error messages and dup is the error
// wrapped when the name is already present.
func parseField(l *sexpr.List, what string, fields []ast.Field, dup error) ([]ast.Field, error) {
	pair, err := l.PopList(what)
	if err != nil {
		return nil, err
	}
	t, _, err := popType(pair, "type")
	if err != nil {
		return nil, err
	}
	name, loc, err := popName(pair, "name")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(pair); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if f.Name == name {
			return nil, l.Errorf(loc, dup, "duplicate %s %q", what, name)
		}
	}
	return append(fields, ast.Field{Loc: pair.Loc, Name: name, Type: t}), nil
}
