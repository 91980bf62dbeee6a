// Package record reads fields out of decoded JSON values (map[string]any and
// []any as produced by encoding/json) with errors that name the field, the
// record section it was expected in, and the keys that were actually present.
package record
