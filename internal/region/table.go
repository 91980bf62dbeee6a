package region

import (
	"fmt"
	"strings"

	"profile-converter/internal/common"
	"profile-converter/internal/diagnostic"
	"profile-converter/internal/match"
)

// Table is a fixed bidirectional name <-> code mapping for one domain.
type Table struct {
	domain string
	byName map[string]string
	byCode map[string]string
}

func newTable(domain string, nameToCode map[string]string) *Table {
	t := &Table{
		domain: domain,
		byName: nameToCode,
		byCode: make(map[string]string, len(nameToCode)),
	}

	for name, code := range nameToCode {
		if other, dup := t.byCode[code]; dup {
			panic(fmt.Sprintf("region: %s code %q maps to both %q and %q", domain, code, other, name))
		}

		t.byCode[code] = name
	}

	return t
}

// Domain returns the table's domain name, e.g. "country".
func (t *Table) Domain() string { return t.domain }

// NameForCode resolves a full name from a code.
func (t *Table) NameForCode(code string) (string, error) {
	if name, ok := t.byCode[code]; ok {
		return name, nil
	}

	return "", &LookupError{Domain: t.domain, By: ByCode, Value: code, Suggestions: match.Suggest(code, t.Codes())}
}

// CodeForName resolves a code from a full name.
func (t *Table) CodeForName(name string) (string, error) {
	if code, ok := t.byName[name]; ok {
		return code, nil
	}

	return "", &LookupError{Domain: t.domain, By: ByName, Value: name, Suggestions: match.Suggest(name, t.Names())}
}

// Codes returns every code in the table, sorted.
func (t *Table) Codes() []string { return common.SortedKeys(t.byCode) }

// Names returns every full name in the table, sorted.
func (t *Table) Names() []string { return common.SortedKeys(t.byName) }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.byName) }

// LookupKind says which side of a table a failed lookup searched.
type LookupKind string

const (
	ByCode LookupKind = "code"
	ByName LookupKind = "name"
	// ByCountry marks a region lookup for a country without a region table.
	ByCountry LookupKind = "country"
)

// LookupError reports a value absent from a reference table.
type LookupError struct {
	Domain      string
	By          LookupKind
	Value       string
	Suggestions []string
}

func (e *LookupError) Error() string {
	if e.By == ByCountry {
		return fmt.Sprintf("region lookup is not supported for country %q", e.Value)
	}

	msg := fmt.Sprintf("unsupported %s %s: %q", e.Domain, e.By, e.Value)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(common.Quote(e.Suggestions), " or ") + "?)"
	}

	return msg
}

func (e *LookupError) Unwrap() error { return diagnostic.ErrUnsupported }

func (e *LookupError) Suggest() []string { return e.Suggestions }
