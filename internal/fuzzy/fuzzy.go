// Package fuzzy scores food names against free-text queries using a
// subsequence matcher.
package fuzzy

import "github.com/sahilm/fuzzy"

// Scorer wraps sahilm/fuzzy behind the tracker's scoring seam so the
// algorithm can be swapped without touching registry logic.
type Scorer struct{}

// Score reports the match score for query against candidate; the second
// return is false when query is not a fuzzy match at all.
func (Scorer) Score(query, candidate string) (int, bool) {
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}
