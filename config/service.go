package config

import (
	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/observability"
	"github.com/kbukum/funkit/validation"
)

var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig contains the fields every funkit binary reads.
// Commands extend it by embedding it in their own config structs.
//
// Example:
//
//	type CLIConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Cell CellConfig `yaml:"cell" mapstructure:"cell"`
//	}
type ServiceConfig struct {
	Name          string               `yaml:"name" mapstructure:"name"`
	Environment   string               `yaml:"environment" mapstructure:"environment"`
	Version       string               `yaml:"version" mapstructure:"version"`
	Debug         bool                 `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates the base configuration fields. Every failure is
// reported, not only the first.
func (c *ServiceConfig) Validate() error {
	return c.Check(validation.New()).Validate()
}

// Check adds the base configuration checks to v so embedding structs can
// report their own fields alongside them.
func (c *ServiceConfig) Check(v *validation.Validator) *validation.Validator {
	return v.
		Required("config.name", c.Name).
		Required("config.environment", c.Environment).
		OneOf("config.environment", c.Environment, validEnvironments).
		Nested("config.logging", c.Logging.Validate()).
		Nested("config.observability", c.Observability.Validate())
}
