package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	provinces := []string{"Alberta", "British Columbia", "Manitoba", "Ontario", "Quebec"}
	formats := []string{"cybersole", "stellar", "valor"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   []string
	}{
		{"typo", "Ontaro", provinces, []string{"Ontario"}},
		{"case only", "ontario", provinces, []string{"Ontario"}},
		{"accent", "Québec", provinces, []string{"Quebec"}},
		{"format name", "stelar", formats, []string{"stellar"}},
		{"exact match", "Ontario", provinces, nil},
		{"far away", "Paris", provinces, []string{}},
		{"empty input", "", provinces, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.input, tt.candidates)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSuggestOrdersByDistance(t *testing.T) {
	got := Suggest("valr", []string{"valor", "velor", "vale"})
	// velor is two edits away, over the limit for a five-letter word
	assert.Equal(t, []string{"vale", "valor"}, got)
}
