package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/model"
)

func name(symbol, src string) model.IconName {
	return model.IconName{Symbol: symbol, SourcePath: src}
}

func TestRegistry_AddKeepsOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(name("Zeta", "zeta.svg"), model.IconAsset{}))
	require.NoError(t, r.Add(name("Alpha", "alpha.svg"), model.IconAsset{}))
	require.NoError(t, r.Add(name("Mid", "mid.svg"), model.IconAsset{}))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, r.Symbols())

	e, ok := r.Lookup("Alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha.svg", e.Name.SourcePath)
	_, ok = r.Lookup("alpha")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(name("Bar", "foo/bar.svg"), model.IconAsset{}))
	err := r.Add(name("Bar", "baz/bar.svg"), model.IconAsset{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foo/bar.svg")

	assert.Error(t, r.Add(name("BAR", "BAR.svg"), model.IconAsset{}))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(name("A", "a.svg"), model.IconAsset{}))
	entries := r.Entries()
	entries[0].Name.Symbol = "Changed"
	assert.Equal(t, []string{"A"}, r.Symbols())
}

func TestManifest_EncodeJSON(t *testing.T) {
	m := NewManifest([]ManifestEntry{{
		Symbol:      "IconGetFiles",
		SourcePath:  "activities/icon-get-files.svg",
		DisplayName: "Icon Get Files",
		Width:       "24",
		Height:      "24",
		Color:       "currentColor",
	}})
	data, err := m.Encode(constants.RegistryFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, `{
  "generator": "iconflow",
  "count": 1,
  "icons": [
    {
      "symbol": "IconGetFiles",
      "sourcePath": "activities/icon-get-files.svg",
      "displayName": "Icon Get Files",
      "width": "24",
      "height": "24",
      "color": "currentColor"
    }
  ]
}
`, string(data))

	again, err := m.Encode(constants.RegistryFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestManifest_EncodeYAML(t *testing.T) {
	m := NewManifest([]ManifestEntry{{Symbol: "FooBar", SourcePath: "foo/bar.svg", DisplayName: "Bar", Width: "16", Height: "16", Color: "#000"}})
	data, err := m.Encode(constants.RegistryFormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# "+constants.GeneratedMarker)
	assert.Contains(t, string(data), "symbol: FooBar")

	decoded, err := DecodeManifest(constants.RegistryFormatYAML, data)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestManifest_EmptyAndUnknownFormat(t *testing.T) {
	m := NewManifest(nil)
	data, err := m.Encode(constants.RegistryFormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"icons": []`)

	_, err = m.Encode("toml")
	assert.Error(t, err)
	_, err = DecodeManifest("toml", data)
	assert.Error(t, err)
}
