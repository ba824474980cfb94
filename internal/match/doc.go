// Package match provides identifier normalization, Levenshtein distance, and
// ranking of near-miss type names for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - NormalizeTypeName: normalizes the simple name of a qualified type
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks known type names against an unresolved one
package match
