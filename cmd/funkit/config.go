package main

import (
	"fmt"

	"github.com/kbukum/funkit/config"
	"github.com/kbukum/funkit/validation"
)

// CLIConfig is the configuration read from config.yml and FUNKIT_* env vars.
type CLIConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Cell                 CellConfig `yaml:"cell" mapstructure:"cell"`
}

// CellConfig holds defaults for the cell command.
type CellConfig struct {
	Min      int `yaml:"min" mapstructure:"min"`
	Max      int `yaml:"max" mapstructure:"max"`
	Attempts int `yaml:"attempts" mapstructure:"attempts"`
}

// ApplyDefaults fills unset fields.
func (c *CLIConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "funkit"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Cell.Max == 0 {
		c.Cell.Max = 1000
	}
	if c.Cell.Attempts == 0 {
		c.Cell.Attempts = 5
	}
}

// Validate validates the CLI configuration.
func (c *CLIConfig) Validate() error {
	return c.Check(validation.New()).
		Min("cell.attempts", c.Cell.Attempts, 1).
		Custom(c.Cell.Min <= c.Cell.Max, "cell.min", fmt.Sprintf("must not exceed cell.max (%d)", c.Cell.Max)).
		Validate()
}
