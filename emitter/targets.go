package emitter

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/awantoch/iconflow/constants"
)

// Fixed output file names.
const (
	fileTSXTypes   = "types.ts"
	fileTSXIndex   = "index.ts"
	fileTSXBundle  = "index.tsx"
	fileGoRuntime  = "runtime.go"
	fileGoRegistry = "registry.go"
	fileGoBundle   = "icons.go"
)

// GoFileName returns the per-icon file name for symbol. The _icon suffix
// keeps names clear of GOOS and GOARCH build constraints.
func GoFileName(symbol string) string {
	return strings.ToLower(symbol) + "_icon.go"
}

// TSXFileName returns the per-icon file name for symbol.
func TSXFileName(symbol string) string {
	return symbol + ".tsx"
}

func (e *Emitter) renderTSX(icons []iconView) ([]File, error) {
	types, err := e.part("tsx/types.tmpl", map[string]any{})
	if err != nil {
		return nil, err
	}
	components := make([]string, 0, len(icons))
	for _, icon := range icons {
		c, err := e.part("tsx/component.tmpl", map[string]any{"icon": icon})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", icon.Symbol, err)
		}
		components = append(components, c)
	}
	reexport := e.opts.Layout != constants.LayoutBundle
	index, err := e.part("tsx/registry.tmpl", map[string]any{"icons": icons, "reexport": reexport})
	if err != nil {
		return nil, err
	}

	if !reexport {
		parts := append([]string{types}, components...)
		data, err := e.tsFile([]string{`import type { ComponentType, SVGProps } from "react";`}, append(parts, index)...)
		if err != nil {
			return nil, err
		}
		return []File{{Name: fileTSXBundle, Data: data}}, nil
	}

	files := make([]File, 0, len(icons)+2)
	data, err := e.tsFile([]string{`import type { SVGProps } from "react";`}, types)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: fileTSXTypes, Data: data})

	imports := []string{
		`import type { ComponentType } from "react";`,
		`import type { IconProps } from "./types";`,
	}
	for i, icon := range icons {
		data, err := e.tsFile([]string{`import type { IconProps } from "./types";`}, components[i])
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: TSXFileName(icon.Symbol), Data: data})
		imports = append(imports, fmt.Sprintf("import { %s } from %s;", icon.Symbol, jsString("./"+icon.Symbol)))
	}
	data, err = e.tsFile(imports, index)
	if err != nil {
		return nil, err
	}
	return append(files, File{Name: fileTSXIndex, Data: data}), nil
}

func (e *Emitter) tsFile(imports []string, parts ...string) ([]byte, error) {
	out, err := e.tpl.Render("file.ts.tmpl", map[string]any{
		"header":  constants.GeneratedHeader,
		"imports": imports,
		"parts":   parts,
	})
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(out, "\n") + "\n"), nil
}

func (e *Emitter) renderGo(icons []iconView) ([]File, error) {
	runtime, err := e.part("go/runtime.tmpl", map[string]any{})
	if err != nil {
		return nil, err
	}
	bodies := make([]string, 0, len(icons))
	for _, icon := range icons {
		b, err := e.part("go/icon.tmpl", map[string]any{"icon": icon})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", icon.Symbol, err)
		}
		bodies = append(bodies, b)
	}
	reg, err := e.part("go/registry.tmpl", map[string]any{"icons": icons})
	if err != nil {
		return nil, err
	}

	if e.opts.Layout == constants.LayoutBundle {
		parts := append([]string{runtime}, bodies...)
		data, err := e.goFile(fileGoBundle, append(parts, reg)...)
		if err != nil {
			return nil, err
		}
		return []File{{Name: fileGoBundle, Data: data}}, nil
	}

	files := make([]File, 0, len(icons)+2)
	data, err := e.goFile(fileGoRuntime, runtime)
	if err != nil {
		return nil, err
	}
	files = append(files, File{Name: fileGoRuntime, Data: data})
	for i, icon := range icons {
		name := GoFileName(icon.Symbol)
		data, err := e.goFile(name, bodies[i])
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: name, Data: data})
	}
	data, err = e.goFile(fileGoRegistry, reg)
	if err != nil {
		return nil, err
	}
	return append(files, File{Name: fileGoRegistry, Data: data}), nil
}

// goFile frames parts as a Go source file and formats it.
func (e *Emitter) goFile(name string, parts ...string) ([]byte, error) {
	out, err := e.tpl.Render("file.go.tmpl", map[string]any{
		"header":  constants.GeneratedHeader,
		"package": e.opts.GoPackage,
		"parts":   parts,
	})
	if err != nil {
		return nil, err
	}
	src, err := format.Source([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return src, nil
}
