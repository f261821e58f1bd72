package srcfiles

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// List is the concatenated text of every definition file in a compile
// along with the boundaries of each file so that offsets into Text can
// be mapped back to a file, line and column.
type List struct {
	Text  string
	Files []File
}

// NewError returns an Error bound to l.  err classifies the error and
// may be nil.
func (l *List) NewError(msg string, pos, end int, err error) *Error {
	return &Error{Msg: msg, Pos: pos, End: end, Err: err, list: l}
}

func (l *List) FileOf(pos int) File {
	i := sort.Search(len(l.Files), func(i int) bool { return l.Files[i].start > pos }) - 1
	if i < 0 {
		i = 0
	}
	return l.Files[i]
}

// Load finds every file under dir whose name has the extension ext
// (with or without the leading dot) and concatenates them in lexical
// path order.
func Load(dir, ext string) (*List, error) {
	filenames, err := Find(dir, ext)
	if err != nil {
		return nil, err
	}
	return Concat(filenames)
}

// Find walks dir and returns the sorted paths of regular files with
// extension ext.
func Find(dir, ext string) ([]string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var filenames []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && filepath.Ext(path) == ext {
			filenames = append(filenames, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(filenames)
	return filenames, nil
}

// Concat reads in the indicated files and concatenates their content
// separating each with a newline.
func Concat(filenames []string) (*List, error) {
	var b strings.Builder
	var files []File
	for _, f := range filenames {
		bb, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		bb = norm.NFC.Bytes(bb)
		files = append(files, newFile(f, b.Len(), bb))
		b.Write(bb)
		b.WriteByte('\n')
	}
	return &List{Text: b.String(), Files: files}, nil
}

// FromString returns a List holding a single file named name.
func FromString(name, text string) *List {
	text = norm.NFC.String(text)
	return &List{
		Text:  text,
		Files: []File{newFile(name, 0, []byte(text))},
	}
}
