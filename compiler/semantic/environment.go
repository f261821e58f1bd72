// Package semantic assembles parsed definitions into a validated
// Environment.
package semantic

import (
	"errors"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/parser"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/brimdata/wcgen/pkg/suggest"
)

var (
	ErrDuplicateDefinition = errors.New("duplicate definition")
	ErrNameCollision       = errors.New("name collision")
	ErrUnknownType         = errors.New("unknown type")
)

// Environment is the symbol table of one compile.  Each table keeps
// declaration order.
type Environment struct {
	Structs   []*ast.Struct
	Enums     []*ast.Enum
	Functions []*ast.Function
	Outputs   []*ast.Output

	structs   map[string]*ast.Struct
	enums     map[string]*ast.Enum
	functions map[string]*ast.Function
}

func (e *Environment) Struct(name string) (*ast.Struct, bool) {
	s, ok := e.structs[name]
	return s, ok
}

func (e *Environment) Enum(name string) (*ast.Enum, bool) {
	en, ok := e.enums[name]
	return en, ok
}

func (e *Environment) Function(name string) (*ast.Function, bool) {
	f, ok := e.functions[name]
	return f, ok
}

// Build folds lists into an Environment and validates it.  The first
// error found stops the build.  Name collisions between kinds are
// reported before unknown type references.
func Build(lists []*sexpr.List) (*Environment, error) {
	b := newBuilder()
	for _, list := range lists {
		if list.IsEmpty() {
			continue
		}
		def, err := parser.ParseDefinition(list)
		if err != nil {
			return nil, err
		}
		if err := b.add(list, def); err != nil {
			return nil, err
		}
	}
	if err := b.checkCollisions(); err != nil {
		return nil, err
	}
	if err := b.checkTypes(); err != nil {
		return nil, err
	}
	return b.env, nil
}

type builder struct {
	env *Environment
	// Definitions of every kind in declaration order along with the list
	// each came from for error reporting.
	defs  []ast.Definition
	lists map[ast.Definition]*sexpr.List
}

func newBuilder() *builder {
	return &builder{
		env: &Environment{
			structs:   make(map[string]*ast.Struct),
			enums:     make(map[string]*ast.Enum),
			functions: make(map[string]*ast.Function),
		},
		lists: make(map[ast.Definition]*sexpr.List),
	}
}

func (b *builder) add(list *sexpr.List, def ast.Definition) error {
	env := b.env
	switch def := def.(type) {
	case *ast.Struct:
		if _, ok := env.structs[def.Name]; ok {
			return list.Errorf(def, ErrDuplicateDefinition, "duplicate struct %q", def.Name)
		}
		env.structs[def.Name] = def
		env.Structs = append(env.Structs, def)
	case *ast.Enum:
		if _, ok := env.enums[def.Name]; ok {
			return list.Errorf(def, ErrDuplicateDefinition, "duplicate enum %q", def.Name)
		}
		env.enums[def.Name] = def
		env.Enums = append(env.Enums, def)
	case *ast.Function:
		if _, ok := env.functions[def.Name]; ok {
			return list.Errorf(def, ErrDuplicateDefinition, "duplicate function %q", def.Name)
		}
		env.functions[def.Name] = def
		env.Functions = append(env.Functions, def)
	case *ast.Output:
		env.Outputs = append(env.Outputs, def)
		return nil
	}
	b.defs = append(b.defs, def)
	b.lists[def] = list
	return nil
}

// kinds is the order in which definitions are checked against each other.
var kinds = []string{ast.KeywordStruct, ast.KeywordEnum, ast.KeywordFunction}

var kindNames = map[string]string{
	ast.KeywordStruct:   "struct",
	ast.KeywordEnum:     "enum",
	ast.KeywordFunction: "function",
}

var articles = map[string]string{
	ast.KeywordStruct:   "a struct",
	ast.KeywordEnum:     "an enum",
	ast.KeywordFunction: "a function",
}

func (b *builder) lookup(kind, name string) bool {
	var ok bool
	switch kind {
	case ast.KeywordStruct:
		_, ok = b.env.structs[name]
	case ast.KeywordEnum:
		_, ok = b.env.enums[name]
	case ast.KeywordFunction:
		_, ok = b.env.functions[name]
	}
	return ok
}

// checkCollisions checks every struct, then every enum, then every
// function against the names of the other two kinds.
func (b *builder) checkCollisions() error {
	for _, kind := range kinds {
		for _, def := range b.defs {
			if def.Keyword() != kind {
				continue
			}
			for _, other := range kinds {
				if other != kind && b.lookup(other, def.DefName()) {
					return b.lists[def].Errorf(def, ErrNameCollision, "%s %q has the same name as %s", kindNames[kind], def.DefName(), articles[other])
				}
			}
		}
	}
	return nil
}

// checkTypes checks that every named type resolves to a struct or enum.
func (b *builder) checkTypes() error {
	for _, kind := range kinds {
		for _, def := range b.defs {
			if def.Keyword() != kind {
				continue
			}
			for _, ref := range def.RelatedTypes() {
				name, ok := ast.NamedOf(ref.Type)
				if !ok || b.lookup(ast.KeywordStruct, name) || b.lookup(ast.KeywordEnum, name) {
					continue
				}
				return b.lists[def].Errorf(ref, ErrUnknownType, "unknown type %q%s", name, suggest.Hint(name, b.typeNames()))
			}
		}
	}
	return nil
}

func (b *builder) typeNames() []string {
	var names []string
	for _, s := range b.env.Structs {
		names = append(names, s.Name)
	}
	for _, e := range b.env.Enums {
		names = append(names, e.Name)
	}
	return names
}
