package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/utils"
)

type Config struct {
	Source    string         `json:"source"`
	Output    string         `json:"output"`
	Target    string         `json:"target"`
	Layout    string         `json:"layout"`
	Prefix    string         `json:"prefix,omitempty"`
	GoPackage string         `json:"go_package,omitempty"`
	Exclude   []string       `json:"exclude,omitempty"`
	Clean     bool           `json:"clean,omitempty"`
	Registry  RegistryConfig `json:"registry"`
	Log       LogConfig      `json:"log"`
	Tracing   TracingConfig  `json:"tracing"`
	Metrics   MetricsConfig  `json:"metrics"`
}

// RegistryConfig controls the consolidated registry file.
type RegistryConfig struct {
	// Format is "json" or "yaml".
	Format string `json:"format"`
	// Name is the file name without extension.
	Name string `json:"name"`
}

// FileName returns the registry file name including its extension.
func (r RegistryConfig) FileName() string {
	return r.Name + "." + r.Format
}

type LogConfig struct {
	Level string `json:"level"`
}

// TracingConfig selects the span exporter; an empty exporter disables tracing.
type TracingConfig struct {
	Exporter    string `json:"exporter,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// MetricsConfig points at a node-exporter textfile written after each run.
type MetricsConfig struct {
	Textfile string `json:"textfile,omitempty"`
}

// LoadConfig reads a JSON config file, validates it against the embedded
// schema and layers it over the defaults.
func LoadConfig(filePath string) (*Config, error) {
	wrap := utils.NewErrorWrapper("config")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, wrap.Wrapf(err, "read %s", filePath)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, wrap.Wrapf(err, "parse %s", filePath)
	}
	return cfg, nil
}

// Parse decodes config JSON over the defaults.
func Parse(data []byte) (*Config, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at filePath. A missing file yields the
// defaults unless required is set.
func LoadOrDefault(filePath string, required bool) (*Config, error) {
	cfg, err := LoadConfig(filePath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !required {
		utils.Debug("config %s not found, using defaults", filePath)
		return Default(), nil
	}
	return nil, err
}

// ApplyEnv overrides config values from ICONFLOW_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.EnvSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(constants.EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(constants.EnvTarget); v != "" {
		c.Target = v
	}
}

// Validate checks the invariants the schema cannot express after flags and
// environment overrides have been applied.
func (c *Config) Validate() error {
	if err := utils.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	if err := utils.ValidateRequired("output", c.Output); err != nil {
		return err
	}
	if err := utils.ValidateOneOf("target", c.Target, []string{constants.TargetTSX, constants.TargetGo}); err != nil {
		return err
	}
	if err := utils.ValidateOneOf("layout", c.Layout, []string{constants.LayoutPerIcon, constants.LayoutBundle}); err != nil {
		return err
	}
	if err := utils.ValidateOneOf("registry.format", c.Registry.Format, []string{constants.RegistryFormatJSON, constants.RegistryFormatYAML}); err != nil {
		return err
	}
	if err := utils.ValidateRequired("registry.name", c.Registry.Name); err != nil {
		return err
	}
	if c.Target == constants.TargetGo && !goPackagePattern.MatchString(c.GoPackage) {
		return fmt.Errorf("field 'go_package' must be a lowercase Go package name, got '%s'", c.GoPackage)
	}
	for _, p := range c.Exclude {
		if _, err := path.Match(p, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	return nil
}
