// Package templater renders pongo2 (Jinja2-style) templates for generated code.
package templater

import (
	"fmt"
	"io/fs"
	"maps"
	"sort"
	"sync"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/awantoch/iconflow/utils"
)

// Templater loads named templates from a filesystem and renders them. Compiled
// templates are cached for the life of the Templater.
type Templater struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// NewTemplater creates a Templater reading templates from fsys.
func NewTemplater(fsys fs.FS) *Templater {
	return &Templater{fsys: fsys, cache: make(map[string]*pongo2.Template)}
}

// Render executes the template stored under name.
func (t *Templater) Render(name string, data map[string]any) (string, error) {
	if data == nil {
		return "", fmt.Errorf("template data is nil")
	}
	tpl, err := t.lookup(name)
	if err != nil {
		return "", err
	}
	utils.Debug("Templater.Render: template = %s, context keys = %v", name, contextKeys(data))
	out, err := tpl.Execute(flattenContext(data))
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return out, nil
}

func (t *Templater) lookup(name string) (*pongo2.Template, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tpl, ok := t.cache[name]; ok {
		return tpl, nil
	}
	if t.fsys == nil {
		return nil, fmt.Errorf("template %s: no template filesystem", name)
	}
	src, err := fs.ReadFile(t.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	tpl, err := pongo2.FromBytes(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	t.cache[name] = tpl
	return tpl, nil
}

// RegisterFilters registers custom pongo2 filters. Filters are process-wide;
// registering a name twice keeps the first definition.
func RegisterFilters(filters map[string]pongo2.FilterFunction) {
	for name, fn := range filters {
		if pongo2.FilterExists(name) {
			continue
		}
		_ = pongo2.RegisterFilter(name, fn)
	}
}

// flattenContext converts the map for pongo2 compatibility.
func flattenContext(data map[string]any) pongo2.Context {
	converted := make(pongo2.Context, len(data))
	maps.Copy(converted, data)
	return converted
}

func contextKeys(data map[string]any) []string {
	out := make([]string, 0, len(data))
	for k := range data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
