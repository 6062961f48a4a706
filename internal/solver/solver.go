// Package solver picks guesses for a word-guessing game from the clues
// received so far.
//
// Each call to Guess derives a constraint set from the full history,
// filters the corpus down to the candidates consistent with it, and then
// chooses between cashing in the most plausible candidate, probing the
// unresolved letters with an exclusionary guess, a fixed opening word, or a
// random candidate.
package solver

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"lukechampine.com/frand"

	"github.com/benjaminjkraft/oldschool-wordle/internal/corpus"
	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
	"github.com/benjaminjkraft/oldschool-wordle/internal/judge"
)

const author = "Emma Delescolle (@nanuxbe)"

// RandSource supplies the solver's only nondeterminism. *frand.RNG
// satisfies it.
type RandSource interface {
	Intn(n int) int
}

type Option func(*Solver)

// WithLogger sets the logger used for Verbose tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithRand replaces the random source, overriding Config.Seed.
func WithRand(r RandSource) Option {
	return func(s *Solver) { s.rand = r }
}

// Solver is not safe for concurrent use; give each game its own. The
// corpus and judge may be shared.
type Solver struct {
	corpus *corpus.Corpus
	judge  judge.Judge
	cfg    Config
	log    *zap.Logger
	rand   RandSource
	cache  *cache
}

// New builds a solver over words. A nil judge ranks by letter popularity.
func New(words *corpus.Corpus, j judge.Judge, cfg Config, opts ...Option) (*Solver, error) {
	if words == nil || words.Len() == 0 {
		return nil, corpus.ErrEmptyCorpus
	}
	if err := cfg.Validate(words.WordLen()); err != nil {
		return nil, err
	}
	if j == nil {
		j = judge.NewLetterJudge(words)
	}

	base := make([]string, len(cfg.BaseGuesses))
	for i, w := range cfg.BaseGuesses {
		base[i] = strings.ToLower(w)
	}
	cfg.BaseGuesses = base

	s := &Solver{
		corpus: words,
		judge:  j,
		cfg:    cfg,
		log:    zap.L(),
		cache:  newCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !cfg.Verbose {
		s.log = zap.NewNop()
	}
	if s.rand == nil {
		s.rand = newRand(cfg.Seed)
	}
	return s, nil
}

func newRand(seed uint64) RandSource {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Author credits the heuristics.
func (s *Solver) Author() string { return author }

func (s *Solver) Config() Config { return s.cfg }

// WordLen is the length of every guess the solver makes.
func (s *Solver) WordLen() int { return s.corpus.WordLen() }

// Reset forgets everything memoized so far. Call it between games.
func (s *Solver) Reset() { s.cache = newCache() }

// Constraints returns the constraints derived from h.
func (s *Solver) Constraints(h game.History) Constraints {
	return s.state(h).constraints
}

// Candidates returns the corpus words consistent with h.
func (s *Solver) Candidates(h game.History) []string {
	return s.state(h).candidates.Words
}

func (s *Solver) state(h game.History) *state {
	key := h.Key()
	if st, ok := s.cache.states[key]; ok {
		return st
	}
	c := Extract(h, s.corpus.WordLen())
	st := &state{constraints: c, candidates: Filter(s.corpus, c)}
	s.cache.states[key] = st

	if st.candidates.Len() <= 25 {
		s.log.Debug("candidates", zap.Strings("words", st.candidates.Words))
	}
	s.log.Debug("constraints",
		zap.String("valid", c.Valid),
		zap.String("invalid", c.Invalid),
		zap.String("pattern", c.Pattern()),
		zap.Stringer("singles", c.Singles),
		zap.Stringer("doubles", c.Doubles))
	return st
}

func (s *Solver) rounds(h game.History) int {
	if s.cfg.InferRounds && len(h) > 0 {
		return len(h[0].Word) + 1
	}
	return s.cfg.Rounds
}

// Guess returns the next word to play given every guess so far and its
// clues. It always returns a word of the corpus length, even when the
// clues contradict each other.
func (s *Solver) Guess(h game.History) string {
	st := s.state(h)
	cands := st.candidates
	n := cands.Len()

	if n == 1 {
		return cands.Words[0]
	}
	s.log.Debug(fmt.Sprintf("%d possible matches", n))

	left := s.rounds(h) - len(h)
	s.log.Debug(fmt.Sprintf("%d rounds left", left))

	var held string
	if n > 0 && n <= s.cfg.PopularityThreshold {
		ranked := s.rankByPlausibility(cands)
		if n <= left {
			s.log.Debug("going for it with most popular match", zap.String("guess", ranked[0]))
			return ranked[0]
		}
		held = ranked[0]
		s.log.Debug("holding guess", zap.String("guess", held))
	}

	// with no clues yet there is nothing to resolve
	if len(h) > 0 && n > 0 && n < s.cfg.ExcludeWordsThreshold && left > 1 {
		p, ok := s.exclusionProbe(st)
		s.log.Debug("computed exclusionary guess", zap.String("guess", p.word), zap.Float64("score", p.score))
		if ok && ((len(st.constraints.Valid) == 4 && left > 2) ||
			(p.score >= float64(left) && p.score >= 4*math.Sqrt(float64(n))/3)) {
			return p.word
		}
	}

	if held != "" {
		return held
	}

	if len(h) < len(s.cfg.BaseGuesses) {
		base := s.cfg.BaseGuesses[len(h)]
		if !s.cfg.Hard || cands.Has(s.corpus, base) {
			return base
		}
	}

	if n > 0 {
		return cands.Words[s.rand.Intn(n)]
	}
	// contradictory clues: never leave the game without a guess
	s.log.Debug("no candidates left")
	return s.corpus.At(len(h) * 10 % s.corpus.Len())
}
