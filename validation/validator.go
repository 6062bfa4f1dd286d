package validation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/kbukum/funkit/errors"
)

// Validator accumulates field errors for configuration checks that struct
// tags cannot express, such as comparisons between two fields.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failure for field.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the recorded failures in check order.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns nil when every check passed, otherwise an INVALID_INPUT
// AppError listing each failure with the field errors in Details["fields"].
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}
	messages := lo.Map(v.errors, func(e FieldError, _ int) string {
		return e.Field + ": " + e.Message
	})
	return errors.Validation(strings.Join(messages, "; ")).
		WithDetails(map[string]any{"fields": v.errors})
}

// Required fails when value is empty or only whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Min fails when value is below minVal.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddError(field, fmt.Sprintf("must be at least %d (got: %d)", minVal, value))
	}
	return v
}

// Range fails when value lies outside [minVal, maxVal].
func (v *Validator) Range(field string, value, minVal, maxVal float64) *Validator {
	if value < minVal || value > maxVal {
		v.AddError(field, fmt.Sprintf("must be within [%v, %v] (got: %v)", minVal, maxVal, value))
	}
	return v
}

// OneOf fails when value is not in allowed. An empty value passes; pair it
// with Required when the field is mandatory.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value != "" && !lo.Contains(allowed, value) {
		v.AddError(field, fmt.Sprintf("must be one of %v (got: %s)", allowed, value))
	}
	return v
}

// Custom fails with message when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Nested folds the result of a sub-configuration's Validate into v under
// field. Field errors of a nested Validator keep their own names, prefixed.
func (v *Validator) Nested(field string, err error) *Validator {
	if err == nil {
		return v
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if fields, ok := appErr.Details["fields"].([]FieldError); ok {
			for _, f := range fields {
				v.AddError(field+"."+f.Field, f.Message)
			}
			return v
		}
	}
	v.AddError(field, err.Error())
	return v
}
