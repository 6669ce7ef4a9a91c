package constants

// ============================================================================
// CONFIGURATION
// ============================================================================

// Configuration Files
const (
	ConfigFileName     = "iconflow.config.json"
	IconflowSchemaFile = "iconflow.schema.json"
)

// Environment Variables
const (
	EnvDebug  = "ICONFLOW_DEBUG"
	EnvSource = "ICONFLOW_SOURCE"
	EnvOutput = "ICONFLOW_OUTPUT"
	EnvTarget = "ICONFLOW_TARGET"
)

// ============================================================================
// GENERATION
// ============================================================================

// Emission targets
const (
	TargetTSX = "tsx"
	TargetGo  = "go"
)

// Output layouts
const (
	LayoutPerIcon = "per-icon"
	LayoutBundle  = "bundle"
)

// Registry formats
const (
	RegistryFormatJSON = "json"
	RegistryFormatYAML = "yaml"
)

// Generated file markers
const (
	GeneratedMarker = "Code generated by iconflow"
	GeneratedHeader = "// " + GeneratedMarker + ". DO NOT EDIT."
	SVGExtension    = ".svg"
)

// Default markup values applied when an SVG carries none.
const (
	DefaultIconSize  = "24"
	DefaultIconColor = "currentColor"
)

// ============================================================================
// TELEMETRY
// ============================================================================

const (
	TracerName         = "github.com/awantoch/iconflow"
	ServiceName        = "iconflow"
	TracingExporterOff = ""
	TracingStdout      = "stdout"
	TracingOTLP        = "otlp"
	MetricsNamespace   = "iconflow"
)
