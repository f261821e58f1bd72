package cpp

import (
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
)

const disclaimer = "// This file was generated by wcgen. Do not modify this file manually.\n"

// class is the generated code for one struct.
type class struct {
	header  string
	impl    string
	methods []Method
}

type classGen struct {
	s    *ast.Struct
	name string
	// isStruct reports whether a named type is a struct, which a class
	// holds through an owning pointer.
	isStruct func(string) bool
}

func newClass(s *ast.Struct, isStruct func(string) bool) *class {
	g := &classGen{s: s, name: Identifier(s.Name), isStruct: isStruct}
	return g.class()
}

func (g *classGen) class() *class {
	self := &ast.Named{Name: g.s.Name}
	generated := []*method{
		g.constructor(),
		g.copyConstructor(self),
		g.destructor(),
		g.copyTo(self),
		g.clone(self),
		g.equal(self),
		g.notEqual(self),
		g.assign(self),
	}
	var header, impl formatter
	header.write("#pragma once\n%s", disclaimer)
	for _, inc := range Includes(g.s.RelatedTypes(), g.name+".hpp") {
		header.write("%s\n", inc)
	}
	header.write("\nclass %s\n{\npublic:\n", g.name)
	for _, f := range g.s.Fields {
		header.line(1, "%s;", decl(f.Type, g.passing(f.Type), Identifier(f.Name)))
	}
	impl.write("%s\n#include \"../%s.hpp\"\n\n", disclaimer, g.name)
	for k, m := range generated {
		header.WriteString(m.declaration())
		if k > 0 {
			impl.WriteByte('\n')
		}
		impl.WriteString(m.implementation())
	}
	var methods []Method
	for _, fn := range g.s.Functions {
		m := g.userMethod(fn)
		header.WriteString(m.declaration())
		methods = append(methods, customMethod(m))
	}
	header.write("};\n")
	return &class{
		header:  header.String(),
		impl:    impl.String(),
		methods: methods,
	}
}

// isSelf reports whether t names the class itself.  Such a field starts
// out null since allocating it would recurse forever.
func (g *classGen) isSelf(t ast.Type) bool {
	n, ok := t.(*ast.Named)
	return ok && n.Name == g.s.Name
}

// passing returns how a field of type t is stored.
func (g *classGen) passing(t ast.Type) passing {
	if n, ok := t.(*ast.Named); ok && g.isStruct(n.Name) {
		return byPointer
	}
	return byValue
}

func (g *classGen) newMethod(name string) *method {
	return &method{class: g.name, name: name}
}

func (g *classGen) other(self ast.Type, p passing) []param {
	return []param{{name: "other", typ: self, passing: p}}
}

func (g *classGen) constructor() *method {
	m := g.newMethod(g.name)
	var body formatter
	for _, f := range g.s.Fields {
		value := Default(f.Type)
		switch {
		case g.isSelf(f.Type):
			value = "nullptr"
		case g.passing(f.Type) == byPointer:
			value = "new " + value
		}
		body.line(1, "%s = %s;", Identifier(f.Name), value)
	}
	m.body = body.String()
	return m
}

func (g *classGen) copyConstructor(self ast.Type) *method {
	m := g.newMethod(g.name)
	m.params = g.other(self, byConstReference)
	m.init = g.name + "()"
	m.body = "\tother.copy_to(*this);\n"
	return m
}

func (g *classGen) destructor() *method {
	m := g.newMethod("~" + g.name)
	var body formatter
	for _, f := range g.s.Fields {
		if g.passing(f.Type) == byPointer {
			body.line(1, "delete %s;", Identifier(f.Name))
		}
	}
	m.body = body.String()
	return m
}

func (g *classGen) copyTo(self ast.Type) *method {
	m := g.newMethod("copy_to")
	m.result = ast.Void
	m.params = g.other(self, byReference)
	m.isConst = true
	var body formatter
	for _, f := range g.s.Fields {
		id := Identifier(f.Name)
		switch {
		case g.isSelf(f.Type):
			body.line(1, "delete other.%s;", id)
			body.line(1, "other.%s = %s == nullptr ? nullptr : new %s(*%s);", id, id, g.name, id)
		case g.passing(f.Type) == byPointer:
			body.line(1, "%s->copy_to(*other.%s);", id, id)
		default:
			body.line(1, "other.%s = %s;", id, id)
		}
	}
	m.body = body.String()
	return m
}

func (g *classGen) clone(self ast.Type) *method {
	m := g.newMethod("clone")
	m.result = self
	m.isConst = true
	var body formatter
	body.line(1, "%s clone;", g.name)
	body.line(1, "copy_to(clone);")
	body.line(1, "return clone;")
	m.body = body.String()
	return m
}

func (g *classGen) equal(self ast.Type) *method {
	m := g.newMethod("operator==")
	m.result = ast.Bool
	m.params = g.other(self, byConstReference)
	m.isConst = true
	var terms []string
	for _, f := range g.s.Fields {
		id := Identifier(f.Name)
		switch {
		case g.isSelf(f.Type):
			terms = append(terms, "("+id+" == nullptr ? other."+id+" == nullptr : other."+id+" != nullptr && *"+id+" == *other."+id+")")
		case g.passing(f.Type) == byPointer:
			terms = append(terms, "*"+id+" == *other."+id)
		default:
			terms = append(terms, id+" == other."+id)
		}
	}
	if len(terms) == 0 {
		terms = []string{"true"}
	}
	m.body = "\treturn " + strings.Join(terms, " && ") + ";\n"
	return m
}

func (g *classGen) notEqual(self ast.Type) *method {
	m := g.newMethod("operator!=")
	m.result = ast.Bool
	m.params = g.other(self, byConstReference)
	m.isConst = true
	m.body = "\treturn !(*this == other);\n"
	return m
}

func (g *classGen) assign(self ast.Type) *method {
	m := g.newMethod("operator=")
	m.result = self
	m.passing = byReference
	m.params = g.other(self, byConstReference)
	var body formatter
	body.line(1, "if (this == &other)")
	body.line(1, "{")
	body.line(2, "return *this;")
	body.line(1, "}")
	body.line(1, "other.copy_to(*this);")
	body.line(1, "return *this;")
	m.body = body.String()
	return m
}

// userMethod stubs a member function declared in the schema.  Named
// parameters are passed by reference.
func (g *classGen) userMethod(fn *ast.Function) *method {
	m := g.newMethod(Identifier(fn.Name))
	m.result = fn.Return
	for _, p := range fn.Params {
		passing := byValue
		if _, ok := p.Type.(*ast.Named); ok {
			passing = byReference
		}
		m.params = append(m.params, param{name: Identifier(p.Name), typ: p.Type, passing: passing})
	}
	m.body = stubBody(fn.Return)
	return m
}

func stubBody(result ast.Type) string {
	var body formatter
	body.line(1, "// TODO: Implement function")
	if result != ast.Void {
		body.line(1, "return %s;", Default(result))
	}
	return body.String()
}
