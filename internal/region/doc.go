// Package region holds the static reference tables mapping countries and
// their states or provinces between full names and short codes.
//
// Lookups are exact: no trimming or case folding is applied, since exports
// come from dropdown-driven tools and a mismatch means the upstream format
// changed. Failed lookups carry near-match suggestions for the error message
// but never resolve to them.
package region
