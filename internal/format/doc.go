// Package format defines the contract every external profile format
// implements and the registry that selects implementations by name.
//
// A format parses a decoded JSON document into canonical profiles and emits
// canonical profiles as a value that encodes to the tool's own layout.
// Formats split their input into records so that a single record can be
// parsed, and diagnosed, on its own.
package format
