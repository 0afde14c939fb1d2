package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig      = "config"
	FlagForce       = "force"
	FlagTemplateDir = "template-dir"
	FlagPackage     = "package"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"
	FlagShort       = "short"
	FlagJSON        = "json"
	FlagLimit       = "limit"
	FlagStable      = "stable"

	// Flag descriptions
	DescConfig      = "Path to config file"
	DescForce       = "Copy the template into a non-empty project directory"
	DescTemplateDir = "Template directory to copy instead of the bundled template"
	DescPackage     = "Dependency whose version is set in the manifest"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
	DescShort       = "Show version number only"
	DescJSON        = "Output as JSON"
	DescLimit       = "Maximum number of versions to list (0 for all)"
	DescStable      = "List only stable releases, hiding prereleases"
)
