package blob

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

// Store is the interface for generated-output backends. Names are flat file
// names relative to the store root.
type Store interface {
	// Put writes data under name and reports whether the stored bytes changed.
	Put(ctx context.Context, name string, data []byte) (changed bool, err error)
	Get(ctx context.Context, name string) ([]byte, error)
	// List returns the names currently stored, sorted.
	List(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, name string) error
	Root() string
}

// See filesystem.go and memory.go for driver implementations.

const (
	DriverFilesystem = "filesystem"
	DriverMemory     = "memory"
)

// Config is a minimal struct for store configuration.
type Config struct {
	Driver    string
	Directory string
}

// NewDefaultStore returns a Store based on config, or a FilesystemStore when
// no driver is set.
func NewDefaultStore(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return NewFilesystemStore(cfg.Directory), nil
	case DriverMemory:
		return NewMemoryStore(cfg.Directory), nil
	default:
		return nil, utils.Errorf("unsupported blob driver: %s", cfg.Driver)
	}
}

// CheckName rejects names that would resolve outside root.
func CheckName(root, name string) error {
	unsafe := &model.UnsafeOutputPathError{Root: root, Path: name}
	if name == "" || name == "." || name == ".." {
		return unsafe
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) || filepath.VolumeName(name) != "" {
		return unsafe
	}
	rel, err := filepath.Rel(root, filepath.Join(root, name))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return unsafe
	}
	return nil
}
