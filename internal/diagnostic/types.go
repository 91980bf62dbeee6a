package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds every diagnostic produced while checking an input.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for the class of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Record identifies the input record, e.g. `valor profile "abc"`.
	Record string
	// Field is the offending key, when known.
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Diagnostic codes.
const (
	CodeMissingField = "missing_field"
	CodeUnsupported  = "unsupported_value"
	CodeMalformed    = "malformed_value"
	CodeNoProfiles   = "no_profiles"
	CodeUnknown      = "error"
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic derived from err.
func (d *Diagnostics) AddError(record string, err error) {
	if err == nil {
		return
	}

	diag := Diagnostic{
		Severity: SeverityError,
		Code:     Classify(err),
		Message:  err.Error(),
		Record:   record,
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		diag.Field = fe.Field
	}

	var s Suggester
	if errors.As(err, &s) {
		diag.Suggestions = s.Suggest()
	}

	d.Errors = append(d.Errors, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Record:   record,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Record != "" {
		return d.Record + ": " + msg
	}

	return msg
}

// Classify maps an error onto a diagnostic code.
func Classify(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrUnsupported):
		return CodeUnsupported
	case errors.Is(err, ErrShape):
		return CodeMalformed
	case errors.Is(err, ErrNoProfiles):
		return CodeNoProfiles
	default:
		return CodeUnknown
	}
}
