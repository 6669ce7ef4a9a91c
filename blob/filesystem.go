package blob

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/awantoch/iconflow/constants"
)

// FilesystemStore implements Store on a local directory.
type FilesystemStore struct {
	dir string
}

// NewFilesystemStore returns a store rooted at dir. The directory is created
// on the first Put, so a run that fails before emitting leaves no trace.
func NewFilesystemStore(dir string) *FilesystemStore {
	return &FilesystemStore{dir: filepath.Clean(dir)}
}

func (f *FilesystemStore) Root() string {
	return f.dir
}

// Put stores data as a file in the directory. Identical content is left in
// place; anything else is written atomically.
func (f *FilesystemStore) Put(ctx context.Context, name string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := CheckName(f.dir, name); err != nil {
		return false, err
	}
	path := filepath.Join(f.dir, name)
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(f.dir, constants.DirPermission); err != nil {
		return false, err
	}
	// Write atomically
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, constants.FilePermission); err != nil {
		return false, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return false, err
	}
	return true, nil
}

func (f *FilesystemStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := CheckName(f.dir, name); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(f.dir, name))
}

// List returns regular files directly under the root. A missing root is empty.
func (f *FilesystemStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *FilesystemStore) Remove(ctx context.Context, name string) error {
	if err := CheckName(f.dir, name); err != nil {
		return err
	}
	return os.Remove(filepath.Join(f.dir, name))
}
