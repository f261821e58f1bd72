package cpp

import (
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
)

type param struct {
	name    string
	typ     ast.Type
	passing passing
}

// method is a member function of a generated class.  A nil result marks
// a constructor or destructor.
type method struct {
	class   string
	name    string
	result  ast.Type
	passing passing
	params  []param
	isConst bool
	// init is the delegated constructor call of a constructor.
	init string
	body string
}

func (m *method) signature(qualified bool) string {
	var b strings.Builder
	name := m.name
	if qualified {
		name = m.class + "::" + name
	}
	if m.result != nil {
		b.WriteString(decl(m.result, m.passing, name))
	} else {
		b.WriteString(name)
	}
	b.WriteByte('(')
	for k, p := range m.params {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(decl(p.typ, p.passing, p.name))
	}
	b.WriteByte(')')
	if m.isConst {
		b.WriteString(" const")
	}
	return b.String()
}

// declaration is the line declaring m inside its class.
func (m *method) declaration() string {
	return "\t" + m.signature(false) + ";\n"
}

// implementation is the out-of-class definition of m.  Its first line is
// the qualified signature.
func (m *method) implementation() string {
	var f formatter
	f.write("%s", m.signature(true))
	if m.init != "" {
		f.write(" : %s", m.init)
	}
	f.write("\n{\n%s}\n", m.body)
	return f.String()
}

// Method is a user-declared member function body destined for a custom
// implementation file.  Signature is the first line of Body and is the
// key used to detect a body that is already present.
type Method struct {
	Signature string
	Body      string
}

func customMethod(m *method) Method {
	body := m.implementation()
	sig, _, _ := strings.Cut(body, "\n")
	return Method{Signature: sig, Body: body}
}
