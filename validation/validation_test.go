package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/funkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	if New().Required("name", "stack").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("name", "").HasErrors() {
		t.Error("expected error for empty required field")
	}
	if !New().Required("name", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"inside", 0.5, false},
		{"lower bound", 0, false},
		{"upper bound", 1, false},
		{"below", -0.1, true},
		{"above", 1.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := New().Range("sample_rate", tc.value, 0, 1).HasErrors()
			if got != tc.wantErr {
				t.Errorf("Range(%v) errors = %v, want %v", tc.value, got, tc.wantErr)
			}
		})
	}
}

func TestValidatorMin(t *testing.T) {
	if New().Min("depth", 0, 0).HasErrors() {
		t.Error("expected no error at minimum")
	}
	if !New().Min("depth", -1, 0).HasErrors() {
		t.Error("expected error below minimum")
	}
}

func TestValidatorOneOf(t *testing.T) {
	if New().OneOf("format", "json", []string{"json", "console"}).HasErrors() {
		t.Error("expected no error for valid oneOf value")
	}
	if !New().OneOf("format", "xml", []string{"json", "console"}).HasErrors() {
		t.Error("expected error for invalid oneOf value")
	}
	if New().OneOf("format", "", []string{"json"}).HasErrors() {
		t.Error("expected no error for empty oneOf value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(false, "field", "custom error")
	if !v.HasErrors() {
		t.Fatal("expected error for false condition")
	}
	if v.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Required("name", "x").Validate(); err != nil {
		t.Errorf("expected nil for valid input, got %v", err)
	}

	err := New().Required("name", "").Required("format", "").Validate()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected an AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name") || !strings.Contains(appErr.Message, "format") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	if fields, ok := appErr.Details["fields"].([]FieldError); !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidatorNested(t *testing.T) {
	inner := New().Min("attempts", 0, 1).Validate()
	err := New().Nested("cell", inner).Nested("logging", stderrors.New("bad level")).Nested("ok", nil).Validate()

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected an AppError, got %v", err)
	}
	fields := appErr.Details["fields"].([]FieldError)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", fields)
	}
	if fields[0].Field != "cell.attempts" {
		t.Errorf("expected 'cell.attempts', got %q", fields[0].Field)
	}
	if fields[1].Field != "logging" || fields[1].Message != "bad level" {
		t.Errorf("expected logging error, got %+v", fields[1])
	}
}

func TestStructValidate(t *testing.T) {
	type Account struct {
		Owner   string `json:"owner" validate:"required"`
		Balance int    `json:"balance" validate:"gte=0"`
	}

	if err := Validate(Account{Owner: "ann", Balance: 10}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := Validate(Account{Owner: "", Balance: -5})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "owner") || !strings.Contains(err.Error(), "balance") {
		t.Errorf("expected both fields in error, got %q", err.Error())
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidateVar(t *testing.T) {
	if err := ValidateVar(3, "gte=0,lte=5"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	err := ValidateVar(-1, "gte=0")
	if err == nil {
		t.Fatal("expected error for negative value")
	}
	if !strings.Contains(err.Error(), "greater than or equal to 0") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Balance":    "balance",
		"MaxDepth":   "max_depth",
		"already_ok": "already_ok",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
