// Package validation provides input validation utilities.
//
// Struct tag validation (go-playground/validator) backs the tag-based
// cell validators in package ref and the configuration checks of the
// funkit CLI. The programmatic Validator collects field errors for
// hand-written checks.
//
// # Struct Tag Validation
//
//	type Account struct {
//	    Balance int `validate:"gte=0"`
//	}
//	err := validation.Validate(acct)
//
// # Single Values
//
//	err := validation.ValidateVar(n, "gte=0,lte=100")
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("name", cfg.Name).
//	    Min("cell.attempts", cfg.Cell.Attempts, 1).
//	    Custom(cfg.Cell.Min <= cfg.Cell.Max, "cell.min", "must not exceed cell.max").
//	    Validate()
package validation
