// Package storage is the file access layer used by code generation.
package storage

import (
	"context"
	"io"
)

//go:generate go tool mockgen -destination=./mock/mock_engine.go -package=mock github.com/brimdata/wcgen/pkg/storage Engine

// Engine reads and writes files named by paths.  Put creates any missing
// parent directories.  Get and Delete return an error wrapping
// fs.ErrNotExist for a missing file.
type Engine interface {
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Put(ctx context.Context, path string) (io.WriteCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}

// Get reads the whole file at path.
func Get(ctx context.Context, engine Engine, path string) ([]byte, error) {
	r, err := engine.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	return b, err
}

// Put replaces the file at path with b.
func Put(ctx context.Context, engine Engine, path string, b []byte) error {
	w, err := engine.Put(ctx, path)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
