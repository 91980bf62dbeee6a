package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"profile-converter/internal/common"
)

// Sentinels for errors.Is checks against a whole class of failures.
var (
	ErrMissingField = errors.New("missing required field")
	ErrUnsupported  = errors.New("unsupported value")
	ErrShape        = errors.New("malformed value")

	ErrNoProfiles = errors.New("no profiles were parsed from input")
	ErrSameFormat = errors.New("source and target formats cannot be the same")
)

// FieldError reports a required field that is absent or has the wrong JSON type.
type FieldError struct {
	// Field is the missing or mistyped key.
	Field string
	// Context is a human-readable description of the record section.
	Context string
	// Available lists the keys that were present, sorted.
	Available []string
	// Want and Got are set when the key exists but holds the wrong type.
	Want string
	Got  string
}

func (e *FieldError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("field '%s' in %s must be %s, got %s", e.Field, e.Context, e.Want, e.Got)
	}

	return fmt.Sprintf("missing required field '%s' in %s. Available keys: [%s]",
		e.Field, e.Context, strings.Join(e.Available, ", "))
}

func (e *FieldError) Unwrap() error {
	if e.Want != "" {
		return ErrShape
	}

	return ErrMissingField
}

// UnsupportedError reports a value that no table or rule knows about.
type UnsupportedError struct {
	// Kind names what the value was supposed to be, e.g. "stellar card type".
	Kind  string
	Value string
	// Supported optionally lists every accepted value.
	Supported []string
	// Suggestions are near matches; they are never applied automatically.
	Suggestions []string
}

func (e *UnsupportedError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "unsupported %s: %q", e.Kind, e.Value)

	if len(e.Supported) > 0 {
		fmt.Fprintf(&b, ". Supported: [%s]", strings.Join(e.Supported, ", "))
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", orList(e.Suggestions))
	}

	return b.String()
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ShapeError reports a value with the wrong structure, e.g. an expiry that
// does not split into month and year.
type ShapeError struct {
	What   string
	Value  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("malformed %s: %s", e.What, e.Reason)
	}

	return fmt.Sprintf("malformed %s %q: %s", e.What, e.Value, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// UnknownFormatError reports a format name missing from the registry.
type UnknownFormatError struct {
	// Role is "source" or "target".
	Role        string
	Name        string
	Supported   []string
	Suggestions []string
}

func (e *UnknownFormatError) Error() string {
	msg := fmt.Sprintf("unsupported %s format %q, supported: [%s]", e.Role, e.Name, strings.Join(e.Supported, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", orList(e.Suggestions))
	}

	return msg
}

// Suggester is implemented by errors that carry did-you-mean candidates.
type Suggester interface {
	Suggest() []string
}

func (e *UnsupportedError) Suggest() []string   { return e.Suggestions }
func (e *UnknownFormatError) Suggest() []string { return e.Suggestions }

func orList(values []string) string {
	return strings.Join(common.Quote(values), " or ")
}
