package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{
		Field:     "email",
		Context:   "valor profile",
		Available: []string{"name", "phoneNumber"},
	}

	assert.Equal(t, "missing required field 'email' in valor profile. Available keys: [name, phoneNumber]", err.Error())
	assert.ErrorIs(t, err, ErrMissingField)

	typed := &FieldError{Field: "oneCheckout", Context: "valor profile", Want: "boolean", Got: "string"}
	assert.Equal(t, "field 'oneCheckout' in valor profile must be boolean, got string", typed.Error())
	assert.ErrorIs(t, typed, ErrShape)
}

func TestUnsupportedErrorMessage(t *testing.T) {
	err := &UnsupportedError{
		Kind:      "stellar card type",
		Value:     "diners",
		Supported: []string{"Visa", "MasterCard"},
	}
	assert.Equal(t, `unsupported stellar card type: "diners". Supported: [Visa, MasterCard]`, err.Error())
	assert.ErrorIs(t, err, ErrUnsupported)

	withHint := &UnsupportedError{Kind: "province name", Value: "Ontaro", Suggestions: []string{"Ontario"}}
	assert.Equal(t, `unsupported province name: "Ontaro" (did you mean "Ontario"?)`, withHint.Error())
}

func TestShapeErrorMessage(t *testing.T) {
	err := &ShapeError{What: "card expiration", Value: "0130", Reason: "expected MM/YY"}
	assert.Equal(t, `malformed card expiration "0130": expected MM/YY`, err.Error())
	assert.ErrorIs(t, err, ErrShape)
}

func TestDiagnosticsAddError(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError(`valor profile "a"`, fmt.Errorf("shipping: %w", &FieldError{Field: "city", Context: "valor shipping address"}))
	d.AddError(`valor profile "b"`, &UnsupportedError{Kind: "province name", Value: "Ontaro", Suggestions: []string{"Ontario"}})
	d.AddError(`valor profile "c"`, errors.New("boom"))
	d.AddError(`valor profile "d"`, nil)

	require.Len(t, d.Errors, 3)
	assert.Equal(t, CodeMissingField, d.Errors[0].Code)
	assert.Equal(t, "city", d.Errors[0].Field)
	assert.Equal(t, CodeUnsupported, d.Errors[1].Code)
	assert.Equal(t, []string{"Ontario"}, d.Errors[1].Suggestions)
	assert.Equal(t, CodeUnknown, d.Errors[2].Code)
	assert.Equal(t, SeverityError, d.Errors[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `valor profile "c": [error] boom`)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("empty_input", "no records", "")
	b.AddError("r", &ShapeError{What: "x", Reason: "y"})

	a.Merge(b)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
	assert.Equal(t, "warning", a.Warnings[0].Severity.String())
	assert.Equal(t, "[empty_input] no records", a.Warnings[0].String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing field", &FieldError{Field: "email"}, CodeMissingField},
		{"unsupported", &UnsupportedError{Kind: "card type"}, CodeUnsupported},
		{"malformed", fmt.Errorf("card: %w", &ShapeError{What: "x"}), CodeMalformed},
		{"no profiles", fmt.Errorf("valor input: %w", ErrNoProfiles), CodeNoProfiles},
		{"other", errors.New("boom"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
