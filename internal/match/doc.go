// Package match provides Levenshtein distance and did-you-mean suggestions
// for values that are absent from a lookup table.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks the candidates closest to an unknown value
package match
