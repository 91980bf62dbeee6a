// Package convert orchestrates a conversion: it resolves the source and
// target formats, parses the source document into canonical profiles and
// emits them in the target layout.
//
// Conversion is all or nothing. A single failing record aborts the run and
// nothing is emitted. Validate is the exception: it parses every record and
// reports all failures as diagnostics.
package convert
