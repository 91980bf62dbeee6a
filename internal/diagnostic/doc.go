// Package diagnostic defines the error taxonomy shared by parsers, emitters
// and the conversion orchestrator, plus a collector used when every record
// of an input should be checked instead of stopping at the first failure.
//
// Error classes:
//   - FieldError: a required key is missing or holds the wrong JSON type
//   - UnsupportedError: a value has no entry in a reference table or rule set
//   - ShapeError: a value does not have the expected structure
//   - ErrNoProfiles, ErrSameFormat, UnknownFormatError: run-level failures
package diagnostic
