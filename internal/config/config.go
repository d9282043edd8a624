// Package config provides configuration for the rowbind command.
// It loads settings from environment variables with defaults and validates
// them before any file is opened.
package config

// Config holds all command configuration.
// All settings can be configured via environment variables.
type Config struct {
	Decode  DecodeConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// DecodeConfig holds default table decoding settings.
type DecodeConfig struct {
	// Sheet is the worksheet to read (default: first sheet)
	Sheet string `env:"ROWBIND_SHEET"`

	// Mode is the column matching mode: positional or header (default: positional)
	Mode string `env:"ROWBIND_MODE" default:"positional"`

	// Strict aborts on the first row that fails to decode (default: false)
	Strict bool `env:"ROWBIND_STRICT" default:"false"`

	// SkipBlankRows ignores rows without any cell (default: true)
	SkipBlankRows bool `env:"ROWBIND_SKIP_BLANK_ROWS" default:"true"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	// Pretty enables indented JSON output (default: false)
	Pretty bool `env:"ROWBIND_PRETTY" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"ROWBIND_LOG_LEVEL" envAlt:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"ROWBIND_LOG_FORMAT" envAlt:"LOG_FORMAT" default:"text"`
}
