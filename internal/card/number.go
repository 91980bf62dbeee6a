package card

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"profile-converter/internal/common"
	"profile-converter/internal/diagnostic"
)

const (
	amexLength     = 15
	standardLength = 16
)

// StripSeparators removes all whitespace from a card number.
func StripSeparators(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, number)
}

// InferNetwork classifies a card number by its prefix. Whitespace is ignored.
// The prefix ranges do not overlap, so the order of the checks is irrelevant.
func InferNetwork(raw string) (Network, error) {
	number := StripSeparators(raw)
	if err := requireDigits(number); err != nil {
		return 0, err
	}

	switch {
	case strings.HasPrefix(number, "4"):
		return Visa, nil
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return Amex, nil
	case prefixIn(number, 2, 51, 55), prefixIn(number, 4, 2221, 2720):
		return Mastercard, nil
	case strings.HasPrefix(number, "6011"), strings.HasPrefix(number, "65"), prefixIn(number, 3, 644, 649):
		return Discover, nil
	case prefixIn(number, 4, 3528, 3589):
		return JCB, nil
	}

	return 0, &diagnostic.UnsupportedError{Kind: "card number prefix", Value: Mask(number)}
}

// ExpectedLength returns the digit count a network's numbers must have.
func ExpectedLength(n Network) int {
	if n == Amex {
		return amexLength
	}

	return standardLength
}

// Validate checks that number is a contiguous digit string of the length n requires.
func Validate(number string, n Network) error {
	if !n.Valid() {
		return &diagnostic.UnsupportedError{Kind: "card network", Value: n.String(), Supported: networkNames()}
	}

	if err := requireDigits(number); err != nil {
		return err
	}

	if want := ExpectedLength(n); len(number) != want {
		return &diagnostic.ShapeError{
			What:   n.String() + " card number",
			Value:  Mask(number),
			Reason: fmt.Sprintf("%s card numbers must be %d digits, got %d", n, want, len(number)),
		}
	}

	return nil
}

// FormatNumber groups a contiguous card number with single spaces:
// 4-6-5 for amex, 4-4-4-4 for every other network.
func FormatNumber(number string, n Network) (string, error) {
	if err := Validate(number, n); err != nil {
		return "", err
	}

	if n == Amex {
		return number[:4] + " " + number[4:10] + " " + number[10:], nil
	}

	return number[:4] + " " + number[4:8] + " " + number[8:12] + " " + number[12:], nil
}

// Mask hides all but the last four digits of a card number.
func Mask(number string) string {
	if len(number) <= 4 {
		return number
	}

	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

func requireDigits(number string) error {
	if number == "" {
		return &diagnostic.ShapeError{What: "card number", Reason: "empty"}
	}

	for _, r := range number {
		if r < '0' || r > '9' {
			return &diagnostic.ShapeError{What: "card number", Value: Mask(number), Reason: "must contain only digits"}
		}
	}

	return nil
}

// prefixIn reports whether the first k digits of number, read as an integer,
// fall within [lo, hi]. Numbers shorter than k digits never match.
func prefixIn(number string, k, lo, hi int) bool {
	if len(number) < k {
		return false
	}

	v, err := strconv.Atoi(number[:k])
	if err != nil {
		return false
	}

	return common.InRange(lo, v, hi)
}
