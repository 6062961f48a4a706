package solver

import (
	"cmp"

	"golang.org/x/exp/slices"
)

type scored struct {
	word  string
	score float64
}

// sortScores orders s by descending score. The sort is stable, so equal
// scores keep corpus order.
func sortScores(s []scored) {
	slices.SortStableFunc(s, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
}

// rankByPlausibility orders cands from most to least plausible target.
func (s *Solver) rankByPlausibility(cands Candidates) []string {
	key := cands.key()
	if ranked, ok := s.cache.rankings[key]; ok {
		return ranked
	}

	ranking := make([]scored, len(cands.Words))
	for i, w := range cands.Words {
		ranking[i] = scored{word: w, score: s.judge.PlausibilityScore(w)}
	}
	sortScores(ranking)

	ranked := make([]string, len(ranking))
	for i, r := range ranking {
		ranked[i] = r.word
	}
	s.cache.rankings[key] = ranked
	return ranked
}
