package ast

import "slices"

const (
	KeywordStruct   = "struct"
	KeywordEnum     = "enum"
	KeywordFunction = "fn"
	KeywordOutput   = "output"
	KeywordFields   = "fields"
)

// Definition is one top-level form.  It is implemented only by *Struct,
// *Enum, *Function and *Output.
type Definition interface {
	Node
	Keyword() string
	DefName() string
	RelatedTypes() []TypeRef
	defNode()
}

// TypeRef is a type mentioned by a definition together with the location
// of the mention.
type TypeRef struct {
	Loc
	Type Type
}

// Field is a struct member or an enum variant value.
type Field struct {
	Loc
	Name string
	Type Type
}

func (f Field) Equal(o Field) bool {
	return f.Name == o.Name && EqualTypes(f.Type, o.Type)
}

type Parameter struct {
	Loc
	Name string
	Type Type
}

func (p Parameter) Equal(o Parameter) bool {
	return p.Name == o.Name && EqualTypes(p.Type, o.Type)
}

type Function struct {
	Loc
	Name      string
	Params    []Parameter
	Return    Type
	ReturnLoc Loc
}

// Equal ignores source locations.
func (f *Function) Equal(o *Function) bool {
	return f.Name == o.Name &&
		EqualTypes(f.Return, o.Return) &&
		slices.EqualFunc(f.Params, o.Params, Parameter.Equal)
}

func (f *Function) RelatedTypes() []TypeRef {
	refs := []TypeRef{{f.ReturnLoc, f.Return}}
	for _, p := range f.Params {
		refs = append(refs, TypeRef{p.Loc, p.Type})
	}
	return refs
}

// Struct fields and functions keep declaration order and have unique
// names.
type Struct struct {
	Loc
	Name      string
	Fields    []Field
	Functions []*Function
}

func (s *Struct) Field(name string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}
	return s.Fields[i], true
}

func (s *Struct) Function(name string) (*Function, bool) {
	i := slices.IndexFunc(s.Functions, func(f *Function) bool { return f.Name == name })
	if i < 0 {
		return nil, false
	}
	return s.Functions[i], true
}

func (s *Struct) Equal(o *Struct) bool {
	return s.Name == o.Name &&
		slices.EqualFunc(s.Fields, o.Fields, Field.Equal) &&
		slices.EqualFunc(s.Functions, o.Functions, (*Function).Equal)
}

func (s *Struct) RelatedTypes() []TypeRef {
	var refs []TypeRef
	for _, f := range s.Fields {
		refs = append(refs, TypeRef{f.Loc, f.Type})
	}
	for _, fn := range s.Functions {
		refs = append(refs, fn.RelatedTypes()...)
	}
	return refs
}

type Enum struct {
	Loc
	Name     string
	Variants []*Variant
}

// Variant is simple (C style) when it has no values.  A variant declared
// with a bare type holds a single value named "value".
type Variant struct {
	Loc
	Name   string
	Values []Field
}

func (v *Variant) IsSimple() bool {
	return len(v.Values) == 0
}

func (v *Variant) Equal(o *Variant) bool {
	return v.Name == o.Name && slices.EqualFunc(v.Values, o.Values, Field.Equal)
}

func (e *Enum) Variant(name string) (*Variant, bool) {
	i := slices.IndexFunc(e.Variants, func(v *Variant) bool { return v.Name == name })
	if i < 0 {
		return nil, false
	}
	return e.Variants[i], true
}

// IsSimple is true when no variant carries values.
func (e *Enum) IsSimple() bool {
	for _, v := range e.Variants {
		if !v.IsSimple() {
			return false
		}
	}
	return true
}

func (e *Enum) Equal(o *Enum) bool {
	return e.Name == o.Name && slices.EqualFunc(e.Variants, o.Variants, (*Variant).Equal)
}

func (e *Enum) RelatedTypes() []TypeRef {
	var refs []TypeRef
	for _, v := range e.Variants {
		for _, f := range v.Values {
			refs = append(refs, TypeRef{f.Loc, f.Type})
		}
	}
	return refs
}

type Language int

const (
	Cpp Language = iota
)

func (l Language) String() string {
	switch l {
	case Cpp:
		return "c++"
	}
	return "unknown"
}

// Output is a target language and the folder to generate it into.
type Output struct {
	Loc
	Language Language
	Folder   string
}

func (o *Output) RelatedTypes() []TypeRef { return nil }

func (*Struct) Keyword() string   { return KeywordStruct }
func (*Enum) Keyword() string     { return KeywordEnum }
func (*Function) Keyword() string { return KeywordFunction }
func (*Output) Keyword() string   { return KeywordOutput }

func (s *Struct) DefName() string   { return s.Name }
func (e *Enum) DefName() string     { return e.Name }
func (f *Function) DefName() string { return f.Name }
func (o *Output) DefName() string   { return o.Folder }

func (*Struct) defNode()   {}
func (*Enum) defNode()     {}
func (*Function) defNode() {}
func (*Output) defNode()   {}
