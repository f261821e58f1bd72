package cpp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/brimdata/wcgen/compiler/semantic"
	"github.com/brimdata/wcgen/pkg/storage"
	"go.uber.org/zap"
)

// Generate writes the C++ sources of env under folder.  Replace files
// are deleted and rewritten.  Merge files are rewritten only when the
// merge appends a method.
func Generate(ctx context.Context, logger *zap.Logger, engine storage.Engine, folder string, env *semantic.Environment) error {
	files, err := Plan(env)
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(folder, filepath.FromSlash(f.Path))
		if err := apply(ctx, logger, engine, path, f); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, logger *zap.Logger, engine storage.Engine, path string, f File) error {
	existing, exists, err := read(ctx, engine, path, f.Mode == Merge)
	if err != nil {
		return err
	}
	text, write := f.Render(existing, exists)
	if f.Mode == Merge && !write {
		logger.Debug("custom file up to date", zap.String("path", path))
		return nil
	}
	if f.Mode == Replace && exists {
		if err := engine.Delete(ctx, path); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}
	if err := storage.Put(ctx, engine, path, []byte(text)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote file", zap.String("path", path), zap.Stringer("mode", f.Mode))
	return nil
}

// read returns the current contents of path.  The contents are only
// loaded when load is true.
func read(ctx context.Context, engine storage.Engine, path string, load bool) (string, bool, error) {
	exists, err := engine.Exists(ctx, path)
	if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists || !load {
		return "", exists, nil
	}
	b, err := storage.Get(ctx, engine, path)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), true, nil
}
