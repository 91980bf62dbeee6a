package common

import "strings"

// SplitPair splits s around sep and succeeds only when exactly two parts result.
// "01/30" -> ("01", "30", true); "01/30/1" -> ("", "", false).
func SplitPair(s, sep string) (first, second string, ok bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
