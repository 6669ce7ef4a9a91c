package model

import (
	"path"
	"strings"
)

// IconAsset is one SVG file discovered under the icon root.
type IconAsset struct {
	// RelativePath holds the path segments from the icon root, file name last.
	RelativePath []string
	// RawMarkup is the file content at scan time.
	RawMarkup []byte
	// SVG holds the parsed root element facts.
	SVG SVGInfo
}

// SourcePath returns the slash-joined relative path of the asset.
func (a IconAsset) SourcePath() string {
	return path.Join(a.RelativePath...)
}

// FileName returns the last path segment.
func (a IconAsset) FileName() string {
	if len(a.RelativePath) == 0 {
		return ""
	}
	return a.RelativePath[len(a.RelativePath)-1]
}

// Dirs returns the directory segments between the root and the file.
func (a IconAsset) Dirs() []string {
	if len(a.RelativePath) == 0 {
		return nil
	}
	return a.RelativePath[:len(a.RelativePath)-1]
}

// Stem returns the file name without its extension.
func (a IconAsset) Stem() string {
	name := a.FileName()
	return strings.TrimSuffix(name, path.Ext(name))
}

// Attr is a single attribute of the root svg element, kept in source order.
type Attr struct {
	Name  string
	Value string
}

// SVGInfo describes the root element of a parsed SVG document.
type SVGInfo struct {
	// Attrs are the root attributes in source order.
	Attrs []Attr
	// Inner is the verbatim markup between the root start and end tags.
	Inner string
	// SelfClosing is set for an empty root written as <svg ... />.
	SelfClosing bool
}

// Attr returns the value of the named root attribute.
func (s SVGInfo) Attr(name string) (string, bool) {
	for _, a := range s.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IconName is the public symbol derived for an asset.
type IconName struct {
	Symbol      string   `json:"symbol" yaml:"symbol"`
	SourcePath  string   `json:"sourcePath" yaml:"sourcePath"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	Attempts    []string `json:"-" yaml:"-"`
}
