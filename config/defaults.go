package config

import "github.com/awantoch/iconflow/constants"

// Default paths and values for iconflow.
const (
	// DefaultConfigPath is the config file looked up when --config is not given.
	DefaultConfigPath = constants.ConfigFileName
	// DefaultSourceDir is the icon asset root.
	DefaultSourceDir = "assets/icons"
	// DefaultOutputDir receives generated components and the registry.
	DefaultOutputDir = "src/icons/generated"
	// DefaultGoPackage names the package of generated Go code.
	DefaultGoPackage = "icons"
	// DefaultRegistryName is the registry file name without extension.
	DefaultRegistryName = "registry"
)

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Source:    DefaultSourceDir,
		Output:    DefaultOutputDir,
		Target:    constants.TargetTSX,
		Layout:    constants.LayoutPerIcon,
		GoPackage: DefaultGoPackage,
		Registry: RegistryConfig{
			Format: constants.RegistryFormatJSON,
			Name:   DefaultRegistryName,
		},
		Log: LogConfig{Level: "info"},
	}
}
