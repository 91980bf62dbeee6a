package card

import (
	"strings"

	"profile-converter/internal/diagnostic"
)

//go:generate go tool stringer -type=Network -linecomment -output=network_string.go

// Network identifies a card payment scheme. Its String form is the canonical
// lower-case identifier.
type Network int

const (
	_ Network = iota // zero value is not a valid network

	Visa       // visa
	Mastercard // mastercard
	Amex       // amex
	Discover   // discover
	JCB        // jcb
)

// Networks returns every known network in declaration order.
func Networks() []Network {
	return []Network{Visa, Mastercard, Amex, Discover, JCB}
}

// Valid reports whether n is one of the known networks.
func (n Network) Valid() bool {
	return n >= Visa && n <= JCB
}

// ParseNetwork resolves a network from a tool's card type label.
// Labels such as "Visa", "MasterCard" or " amex " are accepted; the label is
// trimmed and lower-cased before being compared to the canonical identifiers.
func ParseNetwork(label string) (Network, error) {
	id := strings.ToLower(strings.TrimSpace(label))
	for _, n := range Networks() {
		if n.String() == id {
			return n, nil
		}
	}

	return 0, &diagnostic.UnsupportedError{Kind: "card type", Value: label, Supported: networkNames()}
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func networkNames() []string {
	names := make([]string, 0, len(Networks()))
	for _, n := range Networks() {
		names = append(names, n.String())
	}

	return names
}
