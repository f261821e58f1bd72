package srcfiles

import (
	"fmt"
	"strings"
)

// Error is a located compile error.  Pos and End are offsets into the
// text of the List the error is bound to.  End may be -1 when the error
// refers to a single point.  Err, if non-nil, is the sentinel that
// classifies the error and is returned by Unwrap.
type Error struct {
	Msg  string
	Pos  int
	End  int
	Err  error
	list *List
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.list == nil || len(e.list.Files) == 0 || e.Pos < 0 {
		return e.Msg
	}
	file := e.list.FileOf(e.Pos)
	start := file.Position(e.Pos)
	end := Position{-1, -1, -1, -1}
	if e.End >= e.Pos {
		end = file.Position(e.End)
	}
	var b strings.Builder
	b.WriteString(e.Msg)
	if file.Name != "" {
		fmt.Fprintf(&b, " in %s", file.Name)
	}
	line := file.LineOfPos(e.list.Text, e.Pos)
	fmt.Fprintf(&b, " at line %d, column %d:\n%s\n", start.Line, start.Column, line)
	if end.IsValid() && end.Line == start.Line && end.Column > start.Column {
		formatSpanError(&b, start, end)
	} else {
		formatPointError(&b, start)
	}
	return b.String()
}

// Location returns the file name, line and column of the error or
// zero values when the error is not bound to a source list.
func (e *Error) Location() (string, int, int) {
	if e.list == nil || len(e.list.Files) == 0 || e.Pos < 0 {
		return "", 0, 0
	}
	file := e.list.FileOf(e.Pos)
	p := file.Position(e.Pos)
	return file.Name, p.Line, p.Column
}

func formatSpanError(b *strings.Builder, start, end Position) {
	b.WriteString(strings.Repeat(" ", start.Column-1))
	b.WriteString(strings.Repeat("~", end.Column-start.Column))
}

func formatPointError(b *strings.Builder, start Position) {
	col := start.Column - 1
	for k := range col {
		if k >= col-4 && k != col-1 {
			b.WriteByte('=')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("^ ===")
}
