package cpp

import "github.com/brimdata/wcgen/compiler/ast"

func functionSignature(fn *ast.Function) string {
	var f formatter
	f.write("%s(", decl(fn.Return, byValue, Identifier(fn.Name)))
	for k, p := range fn.Params {
		if k > 0 {
			f.write(", ")
		}
		f.write("%s", decl(p.Type, byValue, Identifier(p.Name)))
	}
	f.write(")")
	return f.String()
}

// functionHeader declares a free function.
func functionHeader(fn *ast.Function) string {
	var f formatter
	f.write("#pragma once\n%s", disclaimer)
	for _, inc := range Includes(fn.RelatedTypes(), Identifier(fn.Name)+".hpp") {
		f.write("%s\n", inc)
	}
	f.write("\n%s;\n", functionSignature(fn))
	return f.String()
}

// functionSource defines a free function with a placeholder body.
func functionSource(fn *ast.Function) string {
	var f formatter
	f.write("%s\n#include \"%s.hpp\"\n\n", disclaimer, Identifier(fn.Name))
	f.write("%s\n{\n%s}\n", functionSignature(fn), stubBody(fn.Return))
	return f.String()
}
