package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
)

var ErrInvalidConfig = errors.New("invalid solver config")

// Config tunes the guess selection heuristics. The yaml keys keep the
// short names the heuristics have always been tuned under.
type Config struct {
	// BaseGuesses are fixed opening words, one per early round.
	BaseGuesses []string `yaml:"base_guesses"`
	// ExcludeWordsThreshold: exclusionary scoring is attempted while fewer
	// than this many candidates remain.
	ExcludeWordsThreshold int `yaml:"xcld_wrds_thrs"`
	// ExcludeLettersThreshold: exclusionary scoring is abandoned when more
	// than this many informative letters are unresolved.
	ExcludeLettersThreshold int `yaml:"xcld_ltrs_thrs"`
	// PopularityThreshold: candidates are ranked by plausibility once at
	// most this many remain.
	PopularityThreshold int `yaml:"pop_thrs"`
	// Hard restricts opening guesses and exclusionary probes to words that
	// are still candidates.
	Hard bool `yaml:"hard"`
	// Verbose logs the solver's reasoning at debug level.
	Verbose bool `yaml:"verbose"`
	// Rounds is the number of guesses allowed per game.
	Rounds int `yaml:"rounds"`
	// InferRounds derives the round budget from the history instead, as
	// the first guess's length plus one.
	InferRounds bool `yaml:"infer_rounds"`
	// Seed makes the random fallback choice reproducible. 0 picks a fresh
	// seed.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		BaseGuesses:             []string{"crate", "loins", "dumpy", "wager", "beefy"},
		ExcludeWordsThreshold:   100,
		ExcludeLettersThreshold: 7,
		PopularityThreshold:     11,
		Hard:                    true,
		Rounds:                  6,
	}
}

// Validate checks c for a corpus of wordLen-letter words.
func (c Config) Validate(wordLen int) error {
	switch {
	case c.ExcludeWordsThreshold < 0:
		return fmt.Errorf("%w: xcld_wrds_thrs must not be negative, got %d", ErrInvalidConfig, c.ExcludeWordsThreshold)
	case c.ExcludeLettersThreshold < 0:
		return fmt.Errorf("%w: xcld_ltrs_thrs must not be negative, got %d", ErrInvalidConfig, c.ExcludeLettersThreshold)
	case c.PopularityThreshold < 0:
		return fmt.Errorf("%w: pop_thrs must not be negative, got %d", ErrInvalidConfig, c.PopularityThreshold)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	for _, w := range c.BaseGuesses {
		w = strings.ToLower(w)
		if len(w) != wordLen || !game.IsWord(w) {
			return fmt.Errorf("%w: base guess %q is not a %d letter word", ErrInvalidConfig, w, wordLen)
		}
	}
	return nil
}
