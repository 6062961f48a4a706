package solver

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// bonus for a probe that repeats a letter that may be doubled
	doubleBonus = .3
	// penalty for each slot spent on a letter that is already known
	validPenalty = .5
	// probes scoring less than this aren't worth a turn
	minProbeScore = 2
	// how many of the best probes get reweighted by letter rarity
	reweightTop = 5
)

type probe struct {
	word  string
	score float64
}

// extraLetters collects the letters of the candidates that the clues have
// not classified yet, plus letters that are known but appear more than
// once in some candidate. The latter are also returned as doubles.
func extraLetters(cands []string, valid, invalid LetterSet) (extra []byte, doubles LetterSet) {
	var seen LetterSet
	for _, w := range cands {
		counts, distinct := letterCounts(w)
		for _, l := range distinct {
			switch {
			case seen.Has(l):
			case !valid.Has(l) && !invalid.Has(l):
				extra = append(extra, l)
				seen.Add(l)
			case counts[l-'a'] > 1 && !invalid.Has(l):
				extra = append(extra, l)
				seen.Add(l)
				doubles.Add(l)
			}
		}
	}
	return extra, doubles
}

// pruneLetters drops the letters every candidate already has (twice, for
// doubles): testing them tells us nothing.
func pruneLetters(cands []string, extra []byte, doubles LetterSet) []byte {
	pruned := make([]byte, 0, len(extra))
	for _, l := range extra {
		need := uint8(1)
		if doubles.Has(l) {
			need = 2
		}
		everywhere := true
		for _, w := range cands {
			if strings.Count(w, string(l)) < int(need) {
				everywhere = false
				break
			}
		}
		if !everywhere {
			pruned = append(pruned, l)
		}
	}
	return pruned
}

// exclusionProbe looks for a word that tests as many unresolved letters as
// possible, whether or not it could be the target itself.
func (s *Solver) exclusionProbe(st *state) (probe, bool) {
	valid := letterSetOf(st.constraints.Valid)
	invalid := letterSetOf(st.constraints.Invalid)

	extra, doubles := extraLetters(st.candidates.Words, valid, invalid)
	pruned := pruneLetters(st.candidates.Words, extra, doubles)
	if len(pruned) == 0 || len(pruned) > s.cfg.ExcludeLettersThreshold {
		s.log.Debug("not probing", zap.Int("letters", len(pruned)))
		return probe{}, false
	}

	var hard *Candidates
	if s.cfg.Hard {
		hard = &st.candidates
	}
	return s.scoreProbes(string(pruned), doubles, valid, hard)
}

// scoreProbes scores every corpus word (only candidates, when hard is set)
// by how many of the extra letters it tests, then reweights the best few by
// how rare those letters are in the corpus. It returns the winner with its
// score before reweighting.
func (s *Solver) scoreProbes(extra string, doubles, valid LetterSet, hard *Candidates) (probe, bool) {
	key := extra + "|" + doubles.String() + "|" + valid.String()
	if hard != nil {
		key += "|" + hard.key()
	}
	if r, ok := s.cache.probes[key]; ok {
		return r.probe, r.ok
	}

	p, ok := s.computeProbe(letterSetOf(extra), doubles, valid, hard)
	s.cache.probes[key] = probeResult{probe: p, ok: ok}
	return p, ok
}

func (s *Solver) computeProbe(extra, doubles, valid LetterSet, hard *Candidates) (probe, bool) {
	var ranked []scored
	for i, w := range s.corpus.Words() {
		if hard != nil && !hard.HasIndex(i) {
			continue
		}
		counts, distinct := letterCounts(w)

		score := 0.0
		for _, l := range distinct {
			if extra.Has(l) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		for l := byte('a'); l <= 'z'; l++ {
			if doubles.Has(l) && counts[l-'a'] > 1 {
				score += doubleBonus
			}
		}
		for _, l := range distinct {
			if valid.Has(l) && !doubles.Has(l) {
				score -= validPenalty
			}
		}
		ranked = append(ranked, scored{word: w, score: score})
	}
	if len(ranked) == 0 {
		return probe{}, false
	}

	sortScores(ranked)
	if ranked[0].score < minProbeScore {
		s.log.Debug("nothing exclusionary", zap.Any("best", topScores(ranked)))
		return probe{}, false
	}

	top := ranked
	if len(top) > reweightTop {
		top = top[:reweightTop]
	}
	weighted := make([]scored, len(top))
	for i, r := range top {
		counts, distinct := letterCounts(r.word)
		score := r.score
		for _, l := range distinct {
			if extra.Has(l) && (!valid.Has(l) || counts[l-'a'] > 1) {
				score *= float64(s.corpus.Len()) / float64(s.frequency(l))
			}
		}
		weighted[i] = scored{word: r.word, score: score}
	}
	sortScores(weighted)
	s.log.Debug("exclusionary candidates",
		zap.Any("top", topScores(top)),
		zap.Any("weighted", topScores(weighted)))

	best := weighted[0].word
	for _, r := range top {
		if r.word == best {
			return probe{word: best, score: r.score}, true
		}
	}
	return probe{}, false
}

// frequency is the corpus popularity of l. A letter that never occurs in the
// corpus counts as occurring once.
func (s *Solver) frequency(l byte) int {
	if n := s.corpus.Popularity(l); n > 0 {
		return n
	}
	return 1
}

func topScores(s []scored) map[string]float64 {
	if len(s) > reweightTop {
		s = s[:reweightTop]
	}
	out := make(map[string]float64, len(s))
	for _, r := range s {
		out[r.word] = r.score
	}
	return out
}
