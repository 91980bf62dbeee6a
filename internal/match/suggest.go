package match

import (
	"cmp"
	"slices"
	"strings"
)

// maxSuggestions caps how many candidates Suggest returns.
const maxSuggestions = 3

type scored struct {
	value    string
	distance int
}

// Suggest returns up to three candidates close to input, nearest first.
// Comparison is case-insensitive; a candidate qualifies when its distance is
// at most a third of the longer string, and never more than 3 edits.
// An exact case-sensitive match yields nothing: there is nothing to suggest.
func Suggest(input string, candidates []string) []string {
	if input == "" {
		return nil
	}

	folded := strings.ToLower(input)

	var hits []scored

	for _, c := range candidates {
		if c == input {
			return nil
		}

		d := Levenshtein(folded, strings.ToLower(c))
		if d <= threshold(input, c) {
			hits = append(hits, scored{value: c, distance: d})
		}
	}

	slices.SortFunc(hits, func(a, b scored) int {
		if a.distance != b.distance {
			return cmp.Compare(a.distance, b.distance)
		}

		return cmp.Compare(a.value, b.value)
	})

	out := make([]string, 0, min(len(hits), maxSuggestions))
	for i := 0; i < len(hits) && i < maxSuggestions; i++ {
		out = append(out, hits[i].value)
	}

	return out
}

func threshold(a, b string) int {
	longest := max(len([]rune(a)), len([]rune(b)))

	return min(max(longest/3, 1), 3)
}
