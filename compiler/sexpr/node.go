// Package sexpr reads schema source text into located S-expression lists.
package sexpr

import (
	"fmt"
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/srcfiles"
)

// Node is either an *Atom or a *List.
type Node interface {
	ast.Node
	String() string
	sexprNode()
}

type Atom struct {
	ast.Loc
	Text string
}

func (a *Atom) String() string { return a.Text }

// List is a parenthesized sequence of nodes.  The Pop methods consume
// elements from the front of the receiver.  Lists handed out by PopList
// are private copies so popping never alters the tree built by Parse.
type List struct {
	ast.Loc
	Items []Node
	src   *srcfiles.List
}

func (*Atom) sexprNode() {}
func (*List) sexprNode() {}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for k, n := range l.Items {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Copy returns a shallow copy of l that can be consumed without
// affecting l.
func (l *List) Copy() *List {
	c := *l
	return &c
}

// Source returns the source list l was read from.
func (l *List) Source() *srcfiles.List {
	return l.src
}

func (l *List) IsEmpty() bool {
	return len(l.Items) == 0
}

func (l *List) Len() int {
	return len(l.Items)
}

// Peek returns the first element of l or nil if l is empty.
func (l *List) Peek() Node {
	if l.IsEmpty() {
		return nil
	}
	return l.Items[0]
}

func (l *List) FrontIsAtom() bool {
	_, ok := l.Peek().(*Atom)
	return ok
}

func (l *List) FrontIsList() bool {
	_, ok := l.Peek().(*List)
	return ok
}

// Pop removes and returns the first element of l.  what describes the
// element for the error returned when l is empty.
func (l *List) Pop(what string) (Node, error) {
	if l.IsEmpty() {
		return nil, l.Errorf(l.endLoc(), ErrSyntax, "expected %s", what)
	}
	n := l.Items[0]
	l.Items = l.Items[1:]
	return n, nil
}

// PopAtom removes the first element of l, which must be an atom, and
// returns its text and location.
func (l *List) PopAtom(what string) (string, ast.Loc, error) {
	n, err := l.Pop(what)
	if err != nil {
		return "", ast.Loc{}, err
	}
	a, ok := n.(*Atom)
	if !ok {
		return "", ast.Loc{}, l.Errorf(n, ErrSyntax, "expected %s, got list %s", what, n)
	}
	return a.Text, a.Loc, nil
}

// PopList removes the first element of l, which must be a list, and
// returns a copy of it.
func (l *List) PopList(what string) (*List, error) {
	n, err := l.Pop(what)
	if err != nil {
		return nil, err
	}
	sub, ok := n.(*List)
	if !ok {
		return nil, l.Errorf(n, ErrSyntax, "expected %s, got %q", what, n.String())
	}
	return sub.Copy(), nil
}

// Errorf returns a located error at n that wraps err (which may be nil).
func (l *List) Errorf(n ast.Node, err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if l.src == nil {
		return &srcfiles.Error{Msg: msg, Pos: n.Pos(), End: n.End(), Err: err}
	}
	return l.src.NewError(msg, n.Pos(), n.End(), err)
}

// endLoc points at the closing parenthesis of l.
func (l *List) endLoc() ast.Loc {
	if l.Last > l.First {
		return ast.NewLoc(l.Last-1, -1)
	}
	return ast.NewLoc(l.First, -1)
}
