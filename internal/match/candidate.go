package match

import (
	"sort"
)

// Candidate is a scored control name for a given parameter name.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score descending, then by name.
type CandidateList []Candidate

// Rank scores every name in names against target after normalisation.
func Rank(target string, names []string) CandidateList {
	norm := NormalizeIdent(target)
	list := make(CandidateList, 0, len(names))

	for _, n := range names {
		list = append(list, Candidate{Name: n, Score: Similarity(norm, NormalizeIdent(n))})
	}

	sort.Sort(list)

	return list
}

// Closest returns the best scoring name whose score is at least threshold.
func Closest(target string, names []string, threshold float64) (string, bool) {
	best := Rank(target, names).Top(1)
	if len(best) == 0 || best[0].Score < threshold {
		return "", false
	}

	return best[0].Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}
