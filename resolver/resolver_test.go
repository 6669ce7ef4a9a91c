package resolver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

func assets(paths ...string) []model.IconAsset {
	out := make([]model.IconAsset, len(paths))
	for i, p := range paths {
		out[i] = model.IconAsset{RelativePath: strings.Split(p, "/")}
	}
	return out
}

func resolve(t *testing.T, prefix string, paths ...string) []string {
	t.Helper()
	reg, err := New(prefix).Resolve(assets(paths...))
	require.NoError(t, err)
	return reg.Symbols()
}

func TestResolve_Basic(t *testing.T) {
	reg, err := New("").Resolve(assets("activities/icon-get-files.svg"))
	require.NoError(t, err)
	entries := reg.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "IconGetFiles", entries[0].Name.Symbol)
	assert.Equal(t, "activities/icon-get-files.svg", entries[0].Name.SourcePath)
	assert.Equal(t, "Icon Get Files", entries[0].Name.DisplayName)
	assert.Equal(t, []string{"IconGetFiles"}, entries[0].Name.Attempts)
}

func TestResolve_Casing(t *testing.T) {
	cases := map[string]string{
		"arrow_left.svg":       "ArrowLeft",
		"chevronDown.svg":      "ChevronDown",
		"user-ID-card.svg":     "UserIDCard",
		"icon.arrow.svg":       "IconArrow",
		"file  name.svg":       "FileName",
		"x2y-plus.svg":         "X2yPlus",
		"café-menu.svg":        "CafMenu",
		"a--b__c.svg":          "ABC",
		"icon-get-files-2.svg": "IconGetFiles2",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, []string{want}, resolve(t, "", path))
		})
	}
}

func TestResolve_Prefix(t *testing.T) {
	assert.Equal(t, []string{"DsArrow", "Ds3d"}, resolve(t, "ds", "arrow.svg", "3d.svg"))
	assert.Equal(t, []string{"IconLogo"}, resolve(t, "icon-", "logo.svg"))
}

func TestResolve_HyphenationDiffers(t *testing.T) {
	got := resolve(t, "", "activities/icon-get-files.svg", "activities/icon-get-files-2.svg")
	assert.Equal(t, []string{"IconGetFiles", "IconGetFiles2"}, got)
}

func TestResolve_EscalatesWithParentSegments(t *testing.T) {
	assert.Equal(t, []string{"BazBar", "FooBar"}, resolve(t, "", "baz/bar.svg", "foo/bar.svg"))
}

func TestResolve_EscalatesOnlyCandidatesWithSegments(t *testing.T) {
	assert.Equal(t, []string{"Bar", "FooBar"}, resolve(t, "", "bar.svg", "foo/bar.svg"))
}

func TestResolve_EscalatesSeveralLevels(t *testing.T) {
	got := resolve(t, "", "a/x/bar.svg", "b/x/bar.svg", "c/y/bar.svg")
	assert.Equal(t, []string{"AXBar", "BXBar", "YBar"}, got)
}

func TestResolve_EscalationCascade(t *testing.T) {
	// FooBar from escalation meets an unescalated FooBar.
	got := resolve(t, "", "baz/bar.svg", "foo/bar.svg", "x/foo-bar.svg")
	assert.Equal(t, []string{"BazBar", "FooBar", "XFooBar"}, got)
}

func TestResolve_NumericSuffixAfterExhaustion(t *testing.T) {
	got := resolve(t, "", "star.svg", "star_.svg", "star-.svg")
	assert.Equal(t, []string{"Star", "Star2", "Star3"}, got)
}

func TestResolve_NumericSuffixSkipsHeldNames(t *testing.T) {
	got := resolve(t, "", "foo.svg", "foo_.svg", "foo-2.svg")
	assert.Equal(t, []string{"Foo", "Foo3", "Foo2"}, got)
}

func TestResolve_CaseOnlyDifferenceWarns(t *testing.T) {
	var logs bytes.Buffer
	utils.SetInternalOutput(&logs)
	t.Cleanup(func() { utils.SetInternalOutput(nil) })

	reg, err := New("").Resolve(assets("Foo.svg", "foo.svg"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "Foo2"}, reg.Symbols())
	assert.Contains(t, logs.String(), "differ only by case")
}

func TestResolve_InvalidSymbols(t *testing.T) {
	cases := map[string]string{
		"3d-cube.svg":     "starts with a digit",
		"2x/3d-cube.svg":  "starts with a digit",
		"---.svg":         "has no identifier characters",
		"dir/éé.svg":      "has no identifier characters",
		"registry.svg":    "is a reserved word",
		"icon-props.svg":  "is a reserved word",
		"with-size.svg":   "is a reserved word",
		"SVGProps.svg":    "is a reserved word",
		"dir/---/---.svg": "has no identifier characters",
	}
	for path, reason := range cases {
		t.Run(path, func(t *testing.T) {
			_, err := New("").Resolve(assets(path))
			var invalid *model.InvalidSymbolError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, path, invalid.Path)
			assert.Equal(t, reason, invalid.Reason)
		})
	}
}

func TestResolve_UnusableSymbolsEscalate(t *testing.T) {
	got := resolve(t, "", "status/registry.svg", "nav/index.svg", "icons/3d-cube.svg", "a/b/option.svg")
	assert.Equal(t, []string{"StatusRegistry", "NavIndex", "Icons3dCube", "BOption"}, got)

	reg, err := New("").Resolve(assets("nav/index.svg"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Index", "NavIndex"}, reg.Entries()[0].Name.Attempts)
}

func TestResolve_LanguageGlobalsAreAllowed(t *testing.T) {
	got := resolve(t, "", "status/error.svg", "types/string.svg", "data/object.svg", "promise.svg")
	assert.Equal(t, []string{"Error", "String", "Object", "Promise"}, got)
}

func TestResolve_EscalatedSymbolCollides(t *testing.T) {
	got := resolve(t, "", "nav/index.svg", "nav-index.svg")
	assert.Equal(t, []string{"NavIndex", "NavIndex2"}, got)
}

func TestResolve_Deterministic(t *testing.T) {
	paths := []string{"a/bar.svg", "b/bar.svg", "bar.svg", "c/d/e.svg", "e.svg", "e_.svg"}
	first := resolve(t, "", paths...)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resolve(t, "", paths...))
	}
}

func TestResolve_SymbolsAreUniqueAndLegal(t *testing.T) {
	paths := []string{
		"a/b/icon.svg", "a/c/icon.svg", "b/icon.svg", "icon.svg", "icon-.svg",
		"Icon.svg", "x/icon2.svg", "icon2.svg", "A/b/icon.svg",
	}
	got := resolve(t, "", paths...)
	require.Len(t, got, len(paths))
	seen := map[string]bool{}
	for _, s := range got {
		assert.Empty(t, invalid(s), s)
		key := strings.ToLower(s)
		assert.False(t, seen[key], "duplicate symbol %s", s)
		seen[key] = true
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("IconProps"))
	assert.True(t, IsReserved("WithColor"))
	assert.True(t, IsReserved("React"))
	assert.False(t, IsReserved("Error"))
	assert.False(t, IsReserved("class"))
	assert.False(t, IsReserved("IconGetFiles"))
}
