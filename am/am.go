// Package am holds the ontovet configuration, loaded from TOML files and
// environment variables through Viper.
package am

// Config represents the core ontovet configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON    bool `mapstructure:"json"`    // JSON output instead of console encoding
	Verbose bool `mapstructure:"verbose"` // Debug-level logging
}

// ReportConfig configures report output
type ReportConfig struct {
	Author     string `mapstructure:"author"`     // Stamped on spreadsheet cell comments
	Standalone bool   `mapstructure:"standalone"` // Wrap HTML reports in a full document
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
