package parser

import (
	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/brimdata/wcgen/pkg/suggest"
)

var languages = map[string]ast.Language{
	"c++": ast.Cpp,
	"cpp": ast.Cpp,
}

// ParseOutput parses
//
//	(output language folder)
func ParseOutput(list *sexpr.List) (*ast.Output, error) {
	l, err := expectKeyword(list, ast.KeywordOutput)
	if err != nil {
		return nil, err
	}
	name, loc, err := l.PopAtom("language")
	if err != nil {
		return nil, err
	}
	lang, ok := languages[name]
	if !ok {
		hint := suggest.Hint(name, []string{"c++", "cpp"})
		return nil, l.Errorf(loc, ErrUnknownLanguage, "unknown language %q%s", name, hint)
	}
	folder, _, err := l.PopAtom("folder")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(l); err != nil {
		return nil, err
	}
	return &ast.Output{Loc: list.Loc, Language: lang, Folder: folder}, nil
}
