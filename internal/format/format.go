package format

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"profile-converter/internal/canonical"
)

// Format converts between one tool's JSON layout and canonical profiles.
type Format interface {
	// Name is the registry key, e.g. "valor".
	Name() string
	// Records splits a decoded document into individually parseable records.
	Records(raw any) ([]Record, error)
	// ParseRecord maps a single record to a canonical profile.
	ParseRecord(rec Record) (canonical.Profile, error)
	// Emit maps canonical profiles to a value encoding to the tool's layout.
	Emit(profiles []canonical.Profile) (any, error)
	// Sniff reports whether a JSON document looks like this format.
	Sniff(doc gjson.Result) bool
}

// Record is one profile entry of an input document.
type Record struct {
	// Ref identifies the record in messages, e.g. `valor profile "abc"`.
	Ref   string
	Value any
}

// IDFunc returns a fresh unique identifier.
type IDFunc func() string

// NewUUID is the default IDFunc.
func NewUUID() string {
	return uuid.NewString()
}

// NewShortID returns the first eight hex digits of a random UUID.
func NewShortID() string {
	id := uuid.NewString()
	return id[:strings.IndexByte(id, '-')]
}

// Parse parses every record of raw, stopping at the first failure.
func Parse(f Format, raw any) ([]canonical.Profile, error) {
	records, err := f.Records(raw)
	if err != nil {
		return nil, err
	}

	profiles := make([]canonical.Profile, 0, len(records))
	for _, rec := range records {
		p, err := f.ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Ref, err)
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}
