package parser

import (
	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
)

// ParseStruct parses
//
//	(struct Name (fields (type name)...) (fn ...)...)
//
// The fields list may be omitted.
func ParseStruct(list *sexpr.List) (*ast.Struct, error) {
	l, err := expectKeyword(list, ast.KeywordStruct)
	if err != nil {
		return nil, err
	}
	name, loc, err := popName(l, "struct name")
	if err != nil {
		return nil, err
	}
	s := &ast.Struct{Loc: loc, Name: name}
	if !l.IsEmpty() && !startsWithFunction(l) {
		fields, err := l.PopList(ast.KeywordFields)
		if err != nil {
			return nil, err
		}
		id, loc, err := fields.PopAtom(ast.KeywordFields)
		if err != nil {
			return nil, err
		}
		if id != ast.KeywordFields {
			return nil, fields.Errorf(loc, ErrUnexpected, "expected %q", ast.KeywordFields)
		}
		for !fields.IsEmpty() {
			if s.Fields, err = parseField(fields, "field", s.Fields, ErrDuplicateField); err != nil {
				return nil, err
			}
		}
	}
	for !l.IsEmpty() {
		sub, ok := l.Peek().(*sexpr.List)
		if !ok || !CanAttempt(sub, ast.KeywordFunction) {
			return nil, expectEnd(l)
		}
		l.Pop("function")
		f, err := ParseFunction(sub)
		if err != nil {
			return nil, err
		}
		if _, ok := s.Function(f.Name); ok {
			return nil, l.Errorf(f, ErrDuplicateFunction, "duplicate function %q", f.Name)
		}
		s.Functions = append(s.Functions, f)
	}
	return s, nil
}

func startsWithFunction(l *sexpr.List) bool {
	sub, ok := l.Peek().(*sexpr.List)
	return ok && CanAttempt(sub, ast.KeywordFunction)
}
