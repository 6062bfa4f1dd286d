package logger

import "github.com/kbukum/funkit/validation"

// Config contains logging configuration.
type Config struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	return validation.New().
		Required("level", c.Level).
		OneOf("level", c.Level, validLevels).
		Required("format", c.Format).
		OneOf("format", c.Format, validFormats).
		Validate()
}

var (
	validLevels  = []string{"debug", "info", "warn", "error", "fatal", "trace", "disabled"}
	validFormats = []string{FormatJSON, FormatConsole, FormatPretty}
)
