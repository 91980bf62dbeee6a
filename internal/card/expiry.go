package card

import (
	"profile-converter/internal/common"
	"profile-converter/internal/diagnostic"
)

// FourDigitYearPrefix turns a two-digit expiry year into a four-digit one.
const FourDigitYearPrefix = "20"

// FormatExpiry joins month and year as "MM/YY". Values are used verbatim.
func FormatExpiry(month, year string) string {
	return month + "/" + year
}

// SplitExpiry splits an "MM/YY" expiry into month and year.
func SplitExpiry(expiry string) (month, year string, err error) {
	month, year, ok := common.SplitPair(expiry, "/")
	if !ok {
		return "", "", &diagnostic.ShapeError{What: "card expiration", Value: expiry, Reason: "expected MM/YY"}
	}

	return month, year, nil
}

// ShortYear keeps the last two characters of a year, "2030" -> "30".
func ShortYear(year string) string {
	if len(year) <= 2 {
		return year
	}

	return year[len(year)-2:]
}

// LongYear prefixes a two-digit year with the century, "30" -> "2030".
func LongYear(year string) string {
	if len(year) != 2 {
		return year
	}

	return FourDigitYearPrefix + year
}
