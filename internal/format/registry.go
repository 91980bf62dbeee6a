package format

import (
	"fmt"

	"github.com/tidwall/gjson"

	"profile-converter/internal/common"
	"profile-converter/internal/diagnostic"
	"profile-converter/internal/match"
)

// Registry holds the supported formats keyed by name.
type Registry struct {
	formats map[string]Format
}

// NewRegistry creates a registry holding the given formats.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{formats: make(map[string]Format, len(formats))}
	for _, f := range formats {
		r.Add(f)
	}

	return r
}

// Add registers a format, replacing any format with the same name.
func (r *Registry) Add(f Format) {
	r.formats[f.Name()] = f
}

// Get returns a format by name, or nil if not found.
func (r *Registry) Get(name string) Format {
	return r.formats[name]
}

// Has returns true if a format with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.formats[name]
	return exists
}

// Names returns all format names, sorted.
func (r *Registry) Names() []string {
	return common.SortedKeys(r.formats)
}

// Lookup returns a format by name for the given role ("source" or "target").
func (r *Registry) Lookup(name, role string) (Format, error) {
	if f, ok := r.formats[name]; ok {
		return f, nil
	}

	names := r.Names()

	return nil, &diagnostic.UnknownFormatError{
		Role:        role,
		Name:        name,
		Supported:   names,
		Suggestions: match.Suggest(name, names),
	}
}

// Detect returns the name of the single format whose Sniff accepts data.
func (r *Registry) Detect(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", &diagnostic.ShapeError{What: "input", Reason: "not valid JSON"}
	}

	doc := gjson.ParseBytes(data)

	var hits []string

	for _, name := range r.Names() {
		if r.formats[name].Sniff(doc) {
			hits = append(hits, name)
		}
	}

	switch len(hits) {
	case 1:
		return hits[0], nil
	case 0:
		return "", fmt.Errorf("could not detect the input format, expected one of %v", r.Names())
	default:
		return "", fmt.Errorf("input format is ambiguous, matches %v", hits)
	}
}
