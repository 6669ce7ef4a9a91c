package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awantoch/iconflow/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), constants.ConfigFileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, `{
		"source": "design/icons",
		"output": "packages/ui/src/icons",
		"target": "go",
		"layout": "bundle",
		"prefix": "Ds",
		"go_package": "dsicons",
		"exclude": ["drafts/*"],
		"clean": true,
		"registry": {"format": "yaml", "name": "icons"},
		"log": {"level": "debug"},
		"tracing": {"exporter": "stdout"},
		"metrics": {"textfile": "/var/lib/node_exporter/iconflow.prom"}
	}`)

	c, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "design/icons", c.Source)
	assert.Equal(t, "packages/ui/src/icons", c.Output)
	assert.Equal(t, constants.TargetGo, c.Target)
	assert.Equal(t, constants.LayoutBundle, c.Layout)
	assert.Equal(t, "Ds", c.Prefix)
	assert.Equal(t, "dsicons", c.GoPackage)
	assert.Equal(t, []string{"drafts/*"}, c.Exclude)
	assert.True(t, c.Clean)
	assert.Equal(t, "icons.yaml", c.Registry.FileName())
	assert.Equal(t, "stdout", c.Tracing.Exporter)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	p := writeConfig(t, `{"source": "icons", "registry": {"format": "yaml"}}`)

	c, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "icons", c.Source)
	assert.Equal(t, DefaultOutputDir, c.Output)
	assert.Equal(t, constants.TargetTSX, c.Target)
	assert.Equal(t, constants.LayoutPerIcon, c.Layout)
	assert.Equal(t, DefaultRegistryName, c.Registry.Name)
	assert.Equal(t, "registry.yaml", c.Registry.FileName())
}

func TestLoadConfig_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown target":   `{"target": "vue"}`,
		"unknown field":    `{"storage": {}}`,
		"bad package":      `{"go_package": "Icons"}`,
		"bad exporter":     `{"tracing": {"exporter": "jaeger"}}`,
		"not an object":    `[]`,
		"malformed json":   `{"source": `,
		"bad prefix chars": `{"prefix": "../x"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	c, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = LoadOrDefault(missing, true)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(constants.EnvSource, "env/icons")
	t.Setenv(constants.EnvOutput, "env/out")
	t.Setenv(constants.EnvTarget, "go")

	c := Default()
	c.ApplyEnv()
	assert.Equal(t, "env/icons", c.Source)
	assert.Equal(t, "env/out", c.Output)
	assert.Equal(t, "go", c.Target)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty source", func(c *Config) { c.Source = "" }, false},
		{"empty output", func(c *Config) { c.Output = " " }, false},
		{"bad target", func(c *Config) { c.Target = "svelte" }, false},
		{"bad layout", func(c *Config) { c.Layout = "flat" }, false},
		{"bad format", func(c *Config) { c.Registry.Format = "toml" }, false},
		{"go with bad package", func(c *Config) { c.Target = "go"; c.GoPackage = "my-icons" }, false},
		{"tsx ignores package", func(c *Config) { c.GoPackage = "" }, true},
		{"bad exclude", func(c *Config) { c.Exclude = []string{"[a-"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
