package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/brimdata/wcgen/compiler/srcfiles"
)

// ParseType parses the type written as text at loc.  Errors are
// *srcfiles.Error values located at loc that wrap ErrInvalidIdentifierStart,
// ErrUnclosedList or ErrVoidList.
func ParseType(text string, loc ast.Loc) (ast.Type, error) {
	if p, ok := ast.LookupPrimitive(text); ok {
		return p, nil
	}
	if r, _ := utf8.DecodeRuneInString(text); text == "" || (!unicode.IsLetter(r) && r != '_') {
		return nil, typeError(loc, ErrInvalidIdentifierStart, "invalid type %q: %s", text, ErrInvalidIdentifierStart)
	}
	if inner, ok := strings.CutSuffix(text, "[]"); ok {
		elem, err := ParseType(inner, loc)
		if err != nil {
			return nil, err
		}
		if elem == ast.Void {
			return nil, typeError(loc, ErrVoidList, "invalid type %q: %s", text, ErrVoidList)
		}
		return &ast.List{Elem: elem}, nil
	}
	if strings.ContainsAny(text, "[]") {
		return nil, typeError(loc, ErrUnclosedList, "invalid type %q: %s", text, ErrUnclosedList)
	}
	return &ast.Named{Name: text}, nil
}

func typeError(loc ast.Loc, err error, format string, args ...any) error {
	return &srcfiles.Error{Msg: fmt.Sprintf(format, args...), Pos: loc.First, End: loc.Last, Err: err}
}

// parseType is ParseType with the error bound to the source of l.
func parseType(l *sexpr.List, text string, loc ast.Loc) (ast.Type, error) {
	t, err := ParseType(text, loc)
	if err != nil {
		e := err.(*srcfiles.Error)
		return nil, l.Errorf(loc, e.Err, "%s", e.Msg)
	}
	return t, nil
}

// popType pops an atom from l and parses it as a type.
func popType(l *sexpr.List, what string) (ast.Type, ast.Loc, error) {
	text, loc, err := l.PopAtom(what)
	if err != nil {
		return nil, ast.Loc{}, err
	}
	t, err := parseType(l, text, loc)
	return t, loc, err
}
