package record

import (
	"encoding/json"

	"profile-converter/internal/common"
	"profile-converter/internal/diagnostic"
)

// Object is a decoded JSON object tagged with a human-readable context,
// e.g. "valor shipping address".
type Object struct {
	fields  map[string]any
	context string
}

// AsObject asserts that v is a JSON object.
func AsObject(v any, context string) (Object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Object{}, &diagnostic.ShapeError{What: context, Reason: "expected a JSON object, got " + Kind(v)}
	}

	return Object{fields: m, context: context}, nil
}

// AsArray asserts that v is a JSON array.
func AsArray(v any, context string) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, &diagnostic.ShapeError{What: context, Reason: "expected a JSON array, got " + Kind(v)}
	}

	return a, nil
}

// Context returns the description used in error messages.
func (o Object) Context() string { return o.context }

// Keys returns the object's keys, sorted.
func (o Object) Keys() []string { return common.SortedKeys(o.fields) }

// Has reports whether key is present, even if null.
func (o Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Require returns the raw value stored under key.
func (o Object) Require(key string) (any, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, o.missing(key)
	}

	return v, nil
}

// String returns a required string field.
func (o Object) String(key string) (string, error) {
	v, err := o.Require(key)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", o.wrongType(key, "string", v)
	}

	return s, nil
}

// OptionalString returns the string under key, or fallback when the key is
// absent or null. A present value of another type is still an error.
func (o Object) OptionalString(key, fallback string) (string, error) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return fallback, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", o.wrongType(key, "string", v)
	}

	return s, nil
}

// Bool returns a required boolean field.
func (o Object) Bool(key string) (bool, error) {
	v, err := o.Require(key)
	if err != nil {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, o.wrongType(key, "boolean", v)
	}

	return b, nil
}

// OptionalBool returns the boolean under key, or fallback when absent or null.
func (o Object) OptionalBool(key string, fallback bool) (bool, error) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return fallback, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, o.wrongType(key, "boolean", v)
	}

	return b, nil
}

// Object returns a required nested object, tagged with its own context.
func (o Object) Object(key, context string) (Object, error) {
	v, err := o.Require(key)
	if err != nil {
		return Object{}, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return Object{}, o.wrongType(key, "object", v)
	}

	return Object{fields: m, context: context}, nil
}

// Array returns a required array field.
func (o Object) Array(key string) ([]any, error) {
	v, err := o.Require(key)
	if err != nil {
		return nil, err
	}

	a, ok := v.([]any)
	if !ok {
		return nil, o.wrongType(key, "array", v)
	}

	return a, nil
}

func (o Object) missing(key string) error {
	return &diagnostic.FieldError{Field: key, Context: o.context, Available: o.Keys()}
}

func (o Object) wrongType(key, want string, got any) error {
	return &diagnostic.FieldError{Field: key, Context: o.context, Available: o.Keys(), Want: want, Got: Kind(got)}
}

// Kind names the JSON type of a decoded value.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}
