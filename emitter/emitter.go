// Package emitter renders icon components and the registry file and writes
// them through an output store.
package emitter

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/awantoch/iconflow/blob"
	"github.com/awantoch/iconflow/config"
	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/registry"
	"github.com/awantoch/iconflow/templater"
	"github.com/awantoch/iconflow/utils"
)

//go:embed templates
var templateFS embed.FS

func init() {
	templater.RegisterFilters(map[string]pongo2.FilterFunction{
		"goquote": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(strconv.Quote(in.String())), nil
		},
		"jsstring": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(jsString(in.String())), nil
		},
	})
}

// Options select what the emitter produces.
type Options struct {
	Target    string
	Layout    string
	GoPackage string
	Registry  config.RegistryConfig
	Clean     bool
}

// OptionsFromConfig extracts emitter options from a validated config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Target:    cfg.Target,
		Layout:    cfg.Layout,
		GoPackage: cfg.GoPackage,
		Registry:  cfg.Registry,
		Clean:     cfg.Clean,
	}
}

// File is one generated output file.
type File struct {
	Name string
	Data []byte
}

// Result reports what Emit did, by file name.
type Result struct {
	Written   []string
	Unchanged []string
	Removed   []string
}

// Drift is one difference between rendered output and the store.
type Drift struct {
	Name   string
	Reason string
}

// Drift reasons.
const (
	DriftMissing = "missing"
	DriftChanged = "changed"
	DriftStale   = "stale"
)

// Emitter turns a registry into files in a store.
type Emitter struct {
	opts  Options
	store blob.Store
	tpl   *templater.Templater
}

// New returns an Emitter writing to store.
func New(store blob.Store, opts Options) *Emitter {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return &Emitter{opts: opts, store: store, tpl: templater.NewTemplater(sub)}
}

// Render produces every output file for reg in a fixed order without touching
// the store. The registry file comes last.
func (e *Emitter) Render(reg *registry.Registry) ([]File, error) {
	icons := make([]iconView, 0, reg.Len())
	for _, entry := range reg.Entries() {
		icons = append(icons, newIconView(entry))
	}

	var (
		files []File
		err   error
	)
	switch e.opts.Target {
	case constants.TargetTSX:
		files, err = e.renderTSX(icons)
	case constants.TargetGo:
		files, err = e.renderGo(icons)
	default:
		err = utils.NewErrorWrapper("emitter").Failf("unsupported target: %s", e.opts.Target)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]registry.ManifestEntry, 0, len(icons))
	for _, icon := range icons {
		entries = append(entries, icon.manifestEntry())
	}
	data, err := registry.NewManifest(entries).Encode(e.opts.Registry.Format)
	if err != nil {
		return nil, err
	}
	return append(files, File{Name: e.opts.Registry.FileName(), Data: data}), nil
}

// Emit renders reg and writes the result. All file names are checked before
// the first write. With Clean set, generated files the run did not produce
// are removed afterwards.
func (e *Emitter) Emit(ctx context.Context, reg *registry.Registry) (Result, error) {
	var res Result
	files, err := e.Render(reg)
	if err != nil {
		return res, err
	}
	for _, f := range files {
		if err := blob.CheckName(e.store.Root(), f.Name); err != nil {
			return res, err
		}
	}

	for _, f := range files {
		changed, err := e.store.Put(ctx, f.Name, f.Data)
		if err != nil {
			return res, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if changed {
			res.Written = append(res.Written, f.Name)
		} else {
			res.Unchanged = append(res.Unchanged, f.Name)
		}
		utils.Debugw("emitted file", "name", f.Name, "changed", changed)
	}

	if !e.opts.Clean {
		return res, nil
	}
	stale, err := e.stale(ctx, files)
	if err != nil {
		return res, err
	}
	for _, name := range stale {
		if err := e.store.Remove(ctx, name); err != nil {
			return res, fmt.Errorf("remove %s: %w", name, err)
		}
		utils.Debugw("removed stale file", "name", name)
		res.Removed = append(res.Removed, name)
	}
	return res, nil
}

// Diff compares what Emit would produce with the store contents. Stale
// generated files count as drift only when Clean is set.
func (e *Emitter) Diff(ctx context.Context, reg *registry.Registry) ([]Drift, error) {
	files, err := e.Render(reg)
	if err != nil {
		return nil, err
	}
	var drift []Drift
	for _, f := range files {
		current, err := e.store.Get(ctx, f.Name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			drift = append(drift, Drift{Name: f.Name, Reason: DriftMissing})
		case err != nil:
			return nil, err
		case !bytes.Equal(current, f.Data):
			drift = append(drift, Drift{Name: f.Name, Reason: DriftChanged})
		}
	}
	if e.opts.Clean {
		stale, err := e.stale(ctx, files)
		if err != nil {
			return nil, err
		}
		for _, name := range stale {
			drift = append(drift, Drift{Name: name, Reason: DriftStale})
		}
	}
	sort.Slice(drift, func(i, j int) bool { return drift[i].Name < drift[j].Name })
	return drift, nil
}

// stale lists generated files in the store that are not among files.
func (e *Emitter) stale(ctx context.Context, files []File) ([]string, error) {
	produced := make(map[string]struct{}, len(files))
	for _, f := range files {
		produced[f.Name] = struct{}{}
	}
	names, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	var stale []string
	for _, name := range names {
		if _, ok := produced[name]; ok {
			continue
		}
		data, err := e.store.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if isGenerated(name, data) {
			stale = append(stale, name)
		}
	}
	return stale, nil
}

// isGenerated reports whether a file was written by this generator: it either
// carries the marker or is a registry document.
func isGenerated(name string, data []byte) bool {
	if bytes.Contains(data, []byte(constants.GeneratedMarker)) {
		return true
	}
	format := strings.TrimPrefix(path.Ext(name), ".")
	if format != constants.RegistryFormatJSON && format != constants.RegistryFormatYAML {
		return false
	}
	m, err := registry.DecodeManifest(format, data)
	return err == nil && m.Generator == constants.ServiceName
}

// iconView is the template-facing form of a registry entry.
type iconView struct {
	Symbol      string
	SourcePath  string
	DisplayName string
	// Comment is the source path made safe for line and block comments.
	Comment  string
	Width    string
	Height   string
	Color    string
	Inner    string
	Attrs    string
	JSXAttrs string
}

var commentReplacer = strings.NewReplacer("\r", " ", "\n", " ", "*/", "*\\/")

func newIconView(entry registry.Entry) iconView {
	m := Transform(entry.Asset.SVG)
	return iconView{
		Symbol:      entry.Name.Symbol,
		SourcePath:  entry.Name.SourcePath,
		DisplayName: entry.Name.DisplayName,
		Comment:     commentReplacer.Replace(entry.Name.SourcePath),
		Width:       m.Width,
		Height:      m.Height,
		Color:       m.Color,
		Inner:       m.Inner,
		Attrs:       xmlAttrs(m.Attrs),
		JSXAttrs:    jsxAttrs(m.Attrs),
	}
}

func (v iconView) manifestEntry() registry.ManifestEntry {
	return registry.ManifestEntry{
		Symbol:      v.Symbol,
		SourcePath:  v.SourcePath,
		DisplayName: v.DisplayName,
		Width:       v.Width,
		Height:      v.Height,
		Color:       v.Color,
	}
}

// part renders a fragment template and trims surrounding blank lines.
func (e *Emitter) part(name string, data map[string]any) (string, error) {
	out, err := e.tpl.Render(name, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
