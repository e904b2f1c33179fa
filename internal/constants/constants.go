package constants

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI configuration.
	ConfigDirName = ".erpquery"

	// ConfigFileName is the configuration file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the configuration file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "ERPQUERY"
)

// Configuration keys.
const (
	KeyConfig      = "config"
	KeyOutput      = "output"
	KeyVerbose     = "verbose"
	KeyLimit       = "limit"
	KeyExpandLevel = "expand-level"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// FormatPlain prints bare values, one per line.
	FormatPlain = "plain"
)

// JSON formatting.
const (
	// JSONIndent is the indentation used for JSON output.
	JSONIndent = "  "
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// None is used when no value is present.
	None = "none"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// KeyValueArgCount is the argument count of KEY VALUE commands.
const KeyValueArgCount = 2

// Stdin is the file argument that reads standard input.
const Stdin = "-"
