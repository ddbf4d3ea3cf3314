// Package match provides identifier normalisation and edit-distance ranking
// used to pair patch parameter names with hardware control names.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "Knob_1" equals "knob1"
//   - Levenshtein: computes edit distance between strings
//   - Rank / Closest: orders candidate control names by similarity
package match
