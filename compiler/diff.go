package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/brimdata/wcgen/compiler/cpp"
	"github.com/brimdata/wcgen/compiler/semantic"
	"github.com/brimdata/wcgen/pkg/storage"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff writes to w a unified diff for every file a run would change and
// returns the number of such files.  Nothing is written to engine.
func Diff(ctx context.Context, engine storage.Engine, env *semantic.Environment, override string, w io.Writer) (int, error) {
	var n int
	for _, o := range Outputs(env, override) {
		files, err := cpp.Plan(env)
		if err != nil {
			return 0, err
		}
		for _, f := range files {
			path := filepath.Join(o.Folder, filepath.FromSlash(f.Path))
			existing, exists, err := load(ctx, engine, path)
			if err != nil {
				return 0, err
			}
			text, changed := f.Render(existing, exists)
			if !changed {
				continue
			}
			from, a := path, difflib.SplitLines(existing)
			if !exists {
				from, a = "/dev/null", nil
			}
			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        a,
				B:        difflib.SplitLines(text),
				FromFile: from,
				ToFile:   path,
				Context:  3,
			})
			if err != nil {
				return 0, err
			}
			if _, err := io.WriteString(w, diff); err != nil {
				return 0, err
			}
			n++
		}
	}
	return n, nil
}

func load(ctx context.Context, engine storage.Engine, path string) (string, bool, error) {
	b, err := storage.Get(ctx, engine, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), true, nil
}
