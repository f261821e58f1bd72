package parser

import (
	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
)

// ParseFunction parses
//
//	(fn name ((type name)...) returnType)
func ParseFunction(list *sexpr.List) (*ast.Function, error) {
	l, err := expectKeyword(list, ast.KeywordFunction)
	if err != nil {
		return nil, err
	}
	name, loc, err := popName(l, "function name")
	if err != nil {
		return nil, err
	}
	f := &ast.Function{Loc: loc, Name: name}
	params, err := l.PopList("parameter list")
	if err != nil {
		return nil, err
	}
	for !params.IsEmpty() {
		pair, err := params.PopList("parameter")
		if err != nil {
			return nil, err
		}
		t, _, err := popType(pair, "parameter type")
		if err != nil {
			return nil, err
		}
		pname, ploc, err := popName(pair, "parameter name")
		if err != nil {
			return nil, err
		}
		if err := expectEnd(pair); err != nil {
			return nil, err
		}
		for _, p := range f.Params {
			if p.Name == pname {
				return nil, params.Errorf(ploc, ErrDuplicateParameter, "duplicate parameter %q", pname)
			}
		}
		f.Params = append(f.Params, ast.Parameter{Loc: pair.Loc, Name: pname, Type: t})
	}
	if f.Return, f.ReturnLoc, err = popType(l, "return type"); err != nil {
		return nil, err
	}
	if err := expectEnd(l); err != nil {
		return nil, err
	}
	return f, nil
}
