package constants

// CLI Commands
const (
	CmdGenerate = "generate"
	CmdList     = "list"
	CmdCheck    = "check"
)

// CLI Short Descriptions
const (
	DescRoot     = "Generate typed icon components from a directory of SVG assets"
	DescGenerate = "Scan, resolve and emit icon components plus the registry"
	DescList     = "Print the resolved icon registry without writing files"
	DescCheck    = "Fail when the output directory is not up to date"
)

// CLI Messages
const (
	MsgGenerated     = "generated %d icons into %s (%d written, %d unchanged, %d removed)"
	MsgDryRun        = "dry run: %d icons would be written to %s"
	MsgUpToDate      = "%s is up to date"
	MsgDrift         = "%s is out of date: %d file(s) differ"
	MsgDriftFile     = "  %s %s"
	ErrConfigLoad    = "failed to load config %s: %v"
	ErrRunFailed     = "%v"
	ErrUnknownSymbol = "unknown symbol %q"
	HeaderIconList   = "SYMBOL\tSOURCE\tSIZE\tCOLOR"
	OutputFormatFour = "%s\t%s\t%s\t%s"
)

// CLI Default Values
const (
	FilePermission = 0o644
	DirPermission  = 0o755
)
