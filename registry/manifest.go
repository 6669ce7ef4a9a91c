package registry

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/awantoch/iconflow/constants"
)

// ManifestEntry is one icon as written to the registry file.
type ManifestEntry struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	SourcePath  string `json:"sourcePath" yaml:"sourcePath"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Width       string `json:"width" yaml:"width"`
	Height      string `json:"height" yaml:"height"`
	Color       string `json:"color" yaml:"color"`
}

// Manifest is the document written to the registry file.
type Manifest struct {
	Generator string          `json:"generator" yaml:"generator"`
	Count     int             `json:"count" yaml:"count"`
	Icons     []ManifestEntry `json:"icons" yaml:"icons"`
}

// NewManifest wraps entries in a manifest document.
func NewManifest(entries []ManifestEntry) Manifest {
	if entries == nil {
		entries = []ManifestEntry{}
	}
	return Manifest{Generator: constants.ServiceName, Count: len(entries), Icons: entries}
}

// Encode renders the manifest in the given format. Output depends only on
// the entries, so it is byte-stable across runs.
func (m Manifest) Encode(format string) ([]byte, error) {
	switch format {
	case constants.RegistryFormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case constants.RegistryFormatYAML:
		var buf bytes.Buffer
		buf.WriteString("# " + constants.GeneratedMarker + ". DO NOT EDIT.\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported registry format: %s", format)
	}
}

// DecodeManifest parses a registry file written by Encode.
func DecodeManifest(format string, data []byte) (Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case constants.RegistryFormatJSON:
		err = json.Unmarshal(data, &m)
	case constants.RegistryFormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unsupported registry format: %s", format)
	}
	return m, err
}
