package templater

import (
	"strings"
	"testing"
	"testing/fstest"

	pongo2 "github.com/flosch/pongo2/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type icon struct {
	Symbol string
	Width  string
}

func TestRender_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"index.ts.tmpl": {Data: []byte(`{% for icon in icons %}export { {{ icon.Symbol }} } from "./{{ icon.Symbol }}";
{% endfor %}`)},
	}
	tpl := NewTemplater(fsys)
	out, err := tpl.Render("index.ts.tmpl", map[string]any{
		"icons": []icon{{Symbol: "Arrow"}, {Symbol: "Star"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "export { Arrow } from \"./Arrow\";\nexport { Star } from \"./Star\";\n", out)
}

func TestRender_CachesCompiledTemplates(t *testing.T) {
	fsys := fstest.MapFS{"a.tmpl": {Data: []byte("{{ name }}")}}
	tpl := NewTemplater(fsys)
	_, err := tpl.Render("a.tmpl", map[string]any{"name": "x"})
	require.NoError(t, err)

	delete(fsys, "a.tmpl")
	out, err := tpl.Render("a.tmpl", map[string]any{"name": "y"})
	require.NoError(t, err)
	assert.Equal(t, "y", out)
}

func TestRender_Errors(t *testing.T) {
	tpl := NewTemplater(fstest.MapFS{"bad.tmpl": {Data: []byte("{% for %}")}})

	_, err := tpl.Render("bad.tmpl", nil)
	assert.ErrorContains(t, err, "nil")

	_, err = tpl.Render("missing.tmpl", map[string]any{})
	assert.ErrorContains(t, err, "missing.tmpl")

	_, err = tpl.Render("bad.tmpl", map[string]any{})
	assert.ErrorContains(t, err, "compile bad.tmpl")

	_, err = NewTemplater(nil).Render("any.tmpl", map[string]any{})
	assert.Error(t, err)
}

func TestRender_StructFields(t *testing.T) {
	fsys := fstest.MapFS{"a.tmpl": {Data: []byte("{{ a }}-{{ b.Width }}")}}
	out, err := NewTemplater(fsys).Render("a.tmpl", map[string]any{
		"a": "icon",
		"b": icon{Width: "24"},
	})
	require.NoError(t, err)
	assert.Equal(t, "icon-24", out)
}

func TestRegisterFilters(t *testing.T) {
	RegisterFilters(map[string]pongo2.FilterFunction{
		"shout": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.ToUpper(in.String()) + "!"), nil
		},
	})
	// A second registration under the same name is ignored.
	RegisterFilters(map[string]pongo2.FilterFunction{
		"shout": func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue("ignored"), nil
		},
	})
	fsys := fstest.MapFS{"shout.tmpl": {Data: []byte("{{ word|shout }}")}}
	out, err := NewTemplater(fsys).Render("shout.tmpl", map[string]any{"word": "star"})
	require.NoError(t, err)
	assert.Equal(t, "STAR!", out)
}
