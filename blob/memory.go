package blob

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
)

// MemoryStore keeps output in memory. It backs dry runs and drift checks.
type MemoryStore struct {
	root  string
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStore returns an empty store that reports root as its location.
func NewMemoryStore(root string) *MemoryStore {
	return &MemoryStore{root: filepath.Clean(root), files: make(map[string][]byte)}
}

func (m *MemoryStore) Root() string {
	return m.root
}

func (m *MemoryStore) Put(ctx context.Context, name string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := CheckName(m.root, name); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.files[name]; ok && bytes.Equal(existing, data) {
		return false, nil
	}
	m.files[name] = bytes.Clone(data)
	return true, nil
}

func (m *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "get", Path: name, Err: fs.ErrNotExist}
	}
	return bytes.Clone(data), nil
}

func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}
