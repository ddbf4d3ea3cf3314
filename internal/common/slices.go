package common

// Filter returns a new slice holding the elements of s for which keep returns true.
// The order of the kept elements is preserved and s is left untouched.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
