package emitter

import (
	"strconv"
	"strings"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/model"
)

// Markup is a root svg element prepared for a component. Size and color move
// out of the attribute list and become parameter defaults.
type Markup struct {
	Attrs  []model.Attr
	Inner  string
	Width  string
	Height string
	Color  string
}

// Transform applies the component markup rules to a parsed root element.
// Inner markup is never touched.
func Transform(info model.SVGInfo) Markup {
	vbWidth, vbHeight := viewBoxSize(info)
	width, _ := info.Attr("width")
	height, _ := info.Attr("height")

	m := Markup{
		Inner:  info.Inner,
		Width:  firstNonEmpty(width, vbWidth, constants.DefaultIconSize),
		Height: firstNonEmpty(height, vbHeight, constants.DefaultIconSize),
		Color:  constants.DefaultIconColor,
	}
	for _, a := range info.Attrs {
		switch a.Name {
		case "width", "height", "color":
			continue
		case "fill":
			if isLiteralColor(a.Value) {
				m.Color = strings.TrimSpace(a.Value)
				a.Value = constants.DefaultIconColor
			}
		}
		m.Attrs = append(m.Attrs, a)
	}
	return m
}

// isLiteralColor reports whether a fill value is a concrete color rather than
// none, an inherited value or a paint server reference.
func isLiteralColor(v string) bool {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "none", "currentcolor", "inherit":
		return false
	}
	return !strings.HasPrefix(strings.ToLower(v), "url(")
}

// viewBoxSize returns the third and fourth viewBox numbers, or empty strings
// when the viewBox is missing or malformed.
func viewBoxSize(info model.SVGInfo) (string, string) {
	vb, ok := info.Attr("viewBox")
	if !ok {
		return "", ""
	}
	fields := strings.FieldsFunc(vb, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return "", ""
	}
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return "", ""
		}
	}
	return fields[2], fields[3]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// xmlAttrs serializes attributes as they appear in an svg start tag, each with
// a leading space.
func xmlAttrs(attrs []model.Attr) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(a.Value, `"`, "&quot;"))
		b.WriteString(`"`)
	}
	return b.String()
}
