// Package registry holds the ordered symbol to icon mapping built during one
// generation run and encodes it into the registry file.
package registry

import (
	"fmt"
	"strings"

	"github.com/awantoch/iconflow/model"
)

// Entry pairs a resolved name with the asset it was derived from.
type Entry struct {
	Name  model.IconName
	Asset model.IconAsset
}

// Registry maps symbols to entries. It is append-only and keeps insertion
// order. Symbols are unique under case folding so generated file names never
// clash on case-insensitive filesystems.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add appends an entry. A symbol already present, in any casing, is rejected.
func (r *Registry) Add(name model.IconName, asset model.IconAsset) error {
	key := strings.ToLower(name.Symbol)
	if i, ok := r.index[key]; ok {
		return fmt.Errorf("symbol %q from %s already registered by %s",
			name.Symbol, name.SourcePath, r.entries[i].Name.SourcePath)
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Asset: asset})
	return nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the entries in insertion order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the entry registered under symbol (exact casing).
func (r *Registry) Lookup(symbol string) (Entry, bool) {
	i, ok := r.index[strings.ToLower(symbol)]
	if !ok || r.entries[i].Name.Symbol != symbol {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Symbols returns the registered symbols in insertion order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name.Symbol
	}
	return out
}
