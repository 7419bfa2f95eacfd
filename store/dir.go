package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// Dir is a Store keeping one file per key in a folder.
//
// Files are human readable and written atomically (temporary file then
// rename), so a crash never leaves a half written value.
type Dir struct {
	path string
}

// OpenDir opens the store in folder 'path', creating it if needed.
func OpenDir(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New("store folder path is required")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// filename returns the file holding key. Keys are escaped to be safe file names.
func (d *Dir) filename(key string) string {
	return filepath.Join(d.path, url.PathEscape(key))
}

// Get implements Store.
func (d *Dir) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(d.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Store.
func (d *Dir) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(d.path, ".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for key %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.filename(key)); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

// Remove implements Store.
func (d *Dir) Remove(_ context.Context, key string) error {
	err := os.Remove(d.filename(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove key %q: %w", key, err)
	}
	return nil
}

// Close implements Store. It does nothing.
func (d *Dir) Close() error { return nil }
