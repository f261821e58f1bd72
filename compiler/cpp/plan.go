// Package cpp generates C++ sources from a validated Environment.
package cpp

import (
	"errors"
	"fmt"
	"path"

	"github.com/brimdata/wcgen/compiler/semantic"
)

var ErrFileCollision = errors.New("file collision")

type Mode int

const (
	// Replace files are regenerated on every run.
	Replace Mode = iota
	// Merge files belong to the user.  Missing method stubs are appended
	// and nothing else changes.
	Merge
)

func (m Mode) String() string {
	if m == Merge {
		return "merge"
	}
	return "replace"
}

// File is one file of an output.  Path is slash separated and relative
// to the output folder.  For a Merge file, Content is the initial text of
// a file that does not exist yet.
type File struct {
	Path    string
	Mode    Mode
	Content string
	Methods []Method
}

// Render returns the text that should be on disk given the current
// contents of the file and whether it needs to be written.
func (f File) Render(existing string, exists bool) (string, bool) {
	if f.Mode == Replace {
		return f.Content, !exists || existing != f.Content
	}
	base := f.Content
	if exists {
		base = existing
	}
	text, changed := MergeMethods(base, f.Methods)
	return text, changed || !exists
}

// Plan lays out every file of env: enum headers, then struct files in
// dependency order, then free functions.  Distinct names that map to the
// same C++ identifier, such as a-b and a_b, fail with ErrFileCollision.
func Plan(env *semantic.Environment) ([]File, error) {
	structs, err := Order(env.Structs)
	if err != nil {
		return nil, err
	}
	isStruct := func(name string) bool {
		_, ok := env.Struct(name)
		return ok
	}
	var files []File
	// owners maps each path to the definition that produced it.
	owners := make(map[string]string)
	add := func(owner string, fs ...File) error {
		for _, f := range fs {
			if prev, ok := owners[f.Path]; ok {
				return fmt.Errorf("%s and %s both generate %s: %w", prev, owner, f.Path, ErrFileCollision)
			}
			owners[f.Path] = owner
		}
		files = append(files, fs...)
		return nil
	}
	for _, e := range env.Enums {
		err := add(fmt.Sprintf("enum %q", e.Name), File{
			Path:    Identifier(e.Name) + ".hpp",
			Content: enumHeader(e),
		})
		if err != nil {
			return nil, err
		}
	}
	for _, s := range structs {
		name := Identifier(s.Name)
		c := newClass(s, isStruct)
		err := add(fmt.Sprintf("struct %q", s.Name),
			File{
				Path:    name + ".hpp",
				Content: c.header,
			},
			File{
				Path:    path.Join(name, name+"_generated_impl.cpp"),
				Content: c.impl,
			},
			File{
				Path:    path.Join(name, name+"_custom_impl.cpp"),
				Mode:    Merge,
				Content: "#include \"../" + name + ".hpp\"\n\n",
				Methods: c.methods,
			},
		)
		if err != nil {
			return nil, err
		}
	}
	for _, fn := range env.Functions {
		name := Identifier(fn.Name)
		err := add(fmt.Sprintf("function %q", fn.Name),
			File{Path: name + ".hpp", Content: functionHeader(fn)},
			File{Path: name + ".cpp", Content: functionSource(fn)},
		)
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
