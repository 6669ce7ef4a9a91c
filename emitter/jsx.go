package emitter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/awantoch/iconflow/model"
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// React prop names for svg attributes that are not plain camelCase.
var jsxNames = map[string]string{
	"class":       "className",
	"for":         "htmlFor",
	"xlink:href":  "xlinkHref",
	"xmlns:xlink": "xmlnsXlink",
	"xml:space":   "xmlSpace",
	"xml:lang":    "xmlLang",
}

// jsxAttrs serializes root attributes as JSX props, each with a leading space.
func jsxAttrs(attrs []model.Attr) string {
	var b strings.Builder
	for _, a := range attrs {
		if a.Name == "style" {
			if obj := styleObject(a.Value); obj != "" {
				b.WriteString(" style={" + obj + "}")
			}
			continue
		}
		b.WriteString(" ")
		b.WriteString(jsxName(a.Name))
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(a.Value, `"`, "&quot;"))
		b.WriteString(`"`)
	}
	return b.String()
}

func jsxName(name string) string {
	if n, ok := jsxNames[name]; ok {
		return n
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return name
	}
	return camel(name)
}

// camel joins hyphen or colon separated parts, upper-casing all but the first.
func camel(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == ':' })
	for i := 1; i < len(parts); i++ {
		parts[i] = upperFirst(parts[i])
	}
	return strings.Join(parts, "")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// styleObject converts an inline CSS declaration list to a JS object literal.
func styleObject(css string) string {
	var props []string
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" {
			continue
		}
		key := name
		switch {
		case strings.HasPrefix(name, "--"):
		case strings.HasPrefix(name, "-"):
			key = upperFirst(camel(name))
		default:
			key = camel(name)
		}
		if !jsIdentifier.MatchString(key) {
			key = jsString(key)
		}
		props = append(props, key+": "+jsString(value))
	}
	if len(props) == 0 {
		return ""
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
