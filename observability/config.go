package observability

import (
	"time"

	"github.com/kbukum/funkit/validation"
)

// Config selects which OpenTelemetry providers the funkit CLI installs.
type Config struct {
	Tracing    bool          `yaml:"tracing" mapstructure:"tracing"`
	Metrics    bool          `yaml:"metrics" mapstructure:"metrics"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Validate validates observability configuration.
func (c *Config) Validate() error {
	return validation.New().
		Range("sample_rate", c.SampleRate, 0, 1).
		Custom(!(c.Tracing || c.Metrics) || c.Endpoint != "", "endpoint", "is required when tracing or metrics are enabled").
		Validate()
}
