package sexpr

import (
	"errors"
	"strings"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/srcfiles"
)

var ErrSyntax = errors.New("syntax error")

// Parse reads every top-level list in src.  Comments run from ';' to the
// end of the line.  Atoms are runs of characters other than whitespace,
// parentheses and ';', or double-quoted strings.
func Parse(src *srcfiles.List) ([]*List, error) {
	r := &reader{src: src, text: src.Text}
	var lists []*List
	for {
		r.skip()
		if r.eof() {
			return lists, nil
		}
		if r.text[r.pos] != '(' {
			start := r.pos
			n, err := r.node()
			if err != nil {
				return nil, err
			}
			return nil, src.NewError("expected list at top level, got "+n.String(), start, n.End(), ErrSyntax)
		}
		n, err := r.node()
		if err != nil {
			return nil, err
		}
		lists = append(lists, n.(*List))
	}
}

// ParseString reads text as a single file named name.
func ParseString(name, text string) ([]*List, error) {
	return Parse(srcfiles.FromString(name, text))
}

type reader struct {
	src  *srcfiles.List
	text string
	pos  int
}

func (r *reader) eof() bool {
	return r.pos >= len(r.text)
}

func (r *reader) skip() {
	for !r.eof() {
		switch c := r.text[r.pos]; {
		case c == ';':
			for !r.eof() && r.text[r.pos] != '\n' {
				r.pos++
			}
		case isSpace(c):
			r.pos++
		default:
			return
		}
	}
}

func (r *reader) node() (Node, error) {
	start := r.pos
	switch c := r.text[r.pos]; c {
	case '(':
		r.pos++
		list := &List{src: r.src}
		for {
			r.skip()
			if r.eof() {
				return nil, r.src.NewError("missing ')'", start, start+1, ErrSyntax)
			}
			if r.text[r.pos] == ')' {
				r.pos++
				list.Loc = ast.NewLoc(start, r.pos)
				return list, nil
			}
			n, err := r.node()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, n)
		}
	case ')':
		return nil, r.src.NewError("unexpected ')'", start, start+1, ErrSyntax)
	case '"':
		return r.quoted()
	}
	for !r.eof() && !isDelim(r.text[r.pos]) {
		r.pos++
	}
	return &Atom{Loc: ast.NewLoc(start, r.pos), Text: r.text[start:r.pos]}, nil
}

func (r *reader) quoted() (Node, error) {
	start := r.pos
	r.pos++
	var b strings.Builder
	for !r.eof() {
		c := r.text[r.pos]
		r.pos++
		switch c {
		case '"':
			return &Atom{Loc: ast.NewLoc(start, r.pos), Text: b.String()}, nil
		case '\\':
			if r.eof() {
				break
			}
			b.WriteByte(r.text[r.pos])
			r.pos++
		default:
			b.WriteByte(c)
		}
	}
	return nil, r.src.NewError("unterminated string", start, start+1, ErrSyntax)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelim(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == ';' || c == '"'
}
