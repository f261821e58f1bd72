package cpp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
)

var ErrCycle = errors.New("struct dependency cycle")

// Order sorts structs so that each struct follows every struct it holds
// as a field (directly or inside lists).  Structs with no ordering
// constraint between them keep declaration order.  Self references are
// allowed; longer cycles fail with ErrCycle.
func Order(structs []*ast.Struct) ([]*ast.Struct, error) {
	index := make(map[string]int, len(structs))
	for k, s := range structs {
		index[s.Name] = k
	}
	// deps[k] counts the unemitted structs that structs[k] needs and
	// users[k] lists the structs that need structs[k].
	deps := make([]int, len(structs))
	users := make([][]int, len(structs))
	for k, s := range structs {
		seen := make(map[int]bool)
		for _, f := range s.Fields {
			name, ok := ast.NamedOf(f.Type)
			if !ok {
				continue
			}
			j, ok := index[name]
			if !ok || j == k || seen[j] {
				continue
			}
			seen[j] = true
			deps[k]++
			users[j] = append(users[j], k)
		}
	}
	emitted := make([]bool, len(structs))
	out := make([]*ast.Struct, 0, len(structs))
	for len(out) < len(structs) {
		next := -1
		for k := range structs {
			if !emitted[k] && deps[k] == 0 {
				next = k
				break
			}
		}
		if next < 0 {
			return nil, cycleError(structs, emitted)
		}
		emitted[next] = true
		out = append(out, structs[next])
		for _, u := range users[next] {
			deps[u]--
		}
	}
	return out, nil
}

func cycleError(structs []*ast.Struct, emitted []bool) error {
	var names []string
	for k, s := range structs {
		if !emitted[k] {
			names = append(names, s.Name)
		}
	}
	return fmt.Errorf("%w among %s", ErrCycle, strings.Join(names, ", "))
}
