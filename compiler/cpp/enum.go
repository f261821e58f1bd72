package cpp

import (
	"slices"
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
)

// enumHeader renders an enum as an enum class when every variant is
// simple and as a std::variant of per-variant structs otherwise.
func enumHeader(e *ast.Enum) string {
	name := Identifier(e.Name)
	var f formatter
	f.write("#pragma once\n%s", disclaimer)
	if e.IsSimple() {
		f.write("\nenum class %s\n{\n", name)
		for _, v := range e.Variants {
			f.line(1, "%s,", Identifier(v.Name))
		}
		f.write("};\n")
		return f.String()
	}
	includes := append(Includes(e.RelatedTypes(), name+".hpp"), "#include <variant>")
	slices.Sort(includes)
	for _, inc := range includes {
		f.write("%s\n", inc)
	}
	namespace := name + "_variants"
	f.write("\nnamespace %s\n{\n", namespace)
	var alternatives []string
	for k, v := range e.Variants {
		if k > 0 {
			f.write("\n")
		}
		vname := Identifier(v.Name)
		alternatives = append(alternatives, namespace+"::"+vname)
		f.line(1, "struct %s", vname)
		f.line(1, "{")
		var terms []string
		for _, field := range v.Values {
			id := Identifier(field.Name)
			f.line(2, "%s;", decl(field.Type, byValue, id))
			terms = append(terms, id+" == other."+id)
		}
		if len(terms) == 0 {
			terms = []string{"true"}
		}
		f.line(2, "bool operator==(const %s &other) const { return %s; }", vname, strings.Join(terms, " && "))
		f.line(1, "};")
	}
	f.write("}\n\nusing %s = std::variant<%s>;\n", name, strings.Join(alternatives, ", "))
	return f.String()
}
