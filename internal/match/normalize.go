package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for matching:
// case is folded to lower and separators (_, -, space, .) are stripped.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// SameIdent reports whether a and b normalize to the same identifier.
func SameIdent(a, b string) bool {
	return NormalizeIdent(a) == NormalizeIdent(b)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
