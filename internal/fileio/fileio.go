// Package fileio reads profile documents from disk and writes converted
// documents atomically.
package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/facebookgo/atomicfile"
)

// Stdio is the path that selects standard input or standard output.
const Stdio = "-"

// ReadJSON reads and decodes the JSON document at path. It returns the
// decoded value along with the raw bytes, which format detection inspects.
func ReadJSON(path string) (any, []byte, error) {
	var (
		data []byte
		err  error
	)

	if path == Stdio {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input file: %w", err)
	}

	v, err := DecodeJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}

	return v, data, nil
}

// DecodeJSON decodes a single JSON document.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the JSON document")
	}

	return v, nil
}

// EncodeJSON writes v to w as indented JSON. HTML characters are not escaped.
func EncodeJSON(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	return enc.Encode(v)
}

// WriteJSON writes v to path as indented JSON. The file is replaced only
// once the whole document has been written.
func WriteJSON(path string, v any, indent string) error {
	if path == Stdio {
		return EncodeJSON(os.Stdout, v, indent)
	}

	f, err := atomicfile.New(path, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := EncodeJSON(f, v, indent); err != nil {
		_ = f.Abort()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
