package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"profile-converter/internal/canonical"
	"profile-converter/internal/diagnostic"
	"profile-converter/internal/format"
	"profile-converter/internal/format/cybersole"
	"profile-converter/internal/format/stellar"
	"profile-converter/internal/format/valor"
)

// Options configures the formats registered by DefaultRegistry.
type Options struct {
	// CybersoleGroup names the group Cybersole output is placed in.
	CybersoleGroup string
	// NewID overrides id generation for every emitter. Nil keeps each
	// format's default.
	NewID format.IDFunc
}

// DefaultRegistry returns a registry holding every supported format.
func DefaultRegistry(opts Options) *format.Registry {
	return format.NewRegistry(
		stellar.New(),
		valor.New(opts.NewID),
		cybersole.New(cybersole.Options{GroupName: opts.CybersoleGroup, NewID: opts.NewID}),
	)
}

// Result is the outcome of a successful conversion.
type Result struct {
	From     string
	To       string
	Count    int
	Profiles []canonical.Profile
	// Output is the target document, ready to be encoded as JSON.
	Output any
}

// Converter converts profile documents between registered formats.
type Converter struct {
	formats *format.Registry
	log     logrus.FieldLogger
}

// New creates a Converter over formats. A nil logger discards log output.
func New(formats *format.Registry, log logrus.FieldLogger) *Converter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Converter{formats: formats, log: log}
}

// Formats returns the registry the converter uses.
func (c *Converter) Formats() *format.Registry {
	return c.formats
}

// Check validates a source and target pair without touching any input.
func (c *Converter) Check(from, to string) error {
	_, _, err := c.pair(from, to)
	return err
}

func (c *Converter) pair(from, to string) (source, target format.Format, err error) {
	if from == to {
		return nil, nil, fmt.Errorf("%w: %q", diagnostic.ErrSameFormat, from)
	}

	if source, err = c.formats.Lookup(from, "source"); err != nil {
		return nil, nil, err
	}

	if target, err = c.formats.Lookup(to, "target"); err != nil {
		return nil, nil, err
	}

	return source, target, nil
}

// Convert parses raw as from and emits it as to.
func (c *Converter) Convert(from, to string, raw any) (*Result, error) {
	source, target, err := c.pair(from, to)
	if err != nil {
		return nil, err
	}

	profiles, err := c.parse(source, raw)
	if err != nil {
		return nil, err
	}

	out, err := target.Emit(profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to emit %s profiles: %w", to, err)
	}

	c.log.WithFields(logrus.Fields{"from": from, "to": to, "count": len(profiles)}).Info("converted profiles")

	return &Result{From: from, To: to, Count: len(profiles), Profiles: profiles, Output: out}, nil
}

// Parse parses raw as from into canonical profiles.
func (c *Converter) Parse(from string, raw any) ([]canonical.Profile, error) {
	source, err := c.formats.Lookup(from, "source")
	if err != nil {
		return nil, err
	}

	return c.parse(source, raw)
}

func (c *Converter) parse(source format.Format, raw any) ([]canonical.Profile, error) {
	profiles, err := format.Parse(source, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s profiles: %w", source.Name(), err)
	}

	if len(profiles) == 0 {
		return nil, diagnostic.ErrNoProfiles
	}

	c.log.WithField("count", len(profiles)).Debugf("parsed %s profiles", source.Name())

	if logger, ok := c.log.(*logrus.Logger); ok && logger.IsLevelEnabled(logrus.TraceLevel) {
		logger.Trace(spew.Sdump(profiles))
	}

	return profiles, nil
}

// Validate parses every record of raw as from and reports each failure
// instead of stopping at the first. The returned error is non-nil only when
// the format is unknown.
func (c *Converter) Validate(from string, raw any) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	source, err := c.formats.Lookup(from, "source")
	if err != nil {
		return diags, err
	}

	records, err := source.Records(raw)
	if err != nil {
		diags.AddError(source.Name()+" input", err)
		return diags, nil
	}

	if len(records) == 0 {
		diags.AddError(source.Name()+" input", diagnostic.ErrNoProfiles)
		return diags, nil
	}

	parsed := make([]parsedRecord, 0, len(records))
	for _, rec := range records {
		p, err := source.ParseRecord(rec)
		if err != nil {
			diags.AddError(rec.Ref, err)
			continue
		}

		parsed = append(parsed, parsedRecord{ref: rec.Ref, name: p.Name})
	}

	diags.Merge(duplicateNames(parsed))

	c.log.WithFields(logrus.Fields{
		"records":  len(records),
		"errors":   len(diags.Errors),
		"warnings": len(diags.Warnings),
	}).Debugf("validated %s input", source.Name())

	return diags, nil
}

// CodeDuplicateName flags two records sharing a profile name.
const CodeDuplicateName = "duplicate_name"

type parsedRecord struct {
	ref  string
	name string
}

// duplicateNames warns about every record reusing an earlier profile name.
func duplicateNames(records []parsedRecord) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]string, len(records))
	for _, rec := range records {
		if prev, dup := seen[rec.name]; dup {
			diags.AddWarning(CodeDuplicateName, fmt.Sprintf("profile name %q is also used by %s", rec.name, prev), rec.ref)
			continue
		}

		seen[rec.name] = rec.ref
	}

	return diags
}

// IsUsageError reports whether err stems from the requested formats rather
// than from the input document.
func IsUsageError(err error) bool {
	var unknown *diagnostic.UnknownFormatError

	return errors.Is(err, diagnostic.ErrSameFormat) || errors.As(err, &unknown)
}
