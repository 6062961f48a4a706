package game

import (
	"errors"
	"fmt"
	"strings"
)

// Clue is the per-position feedback for a guessed letter.
type Clue uint8

const (
	Unknown Clue = iota
	// NotPresent: the letter is absent, or every copy of it in the target
	// is already accounted for elsewhere in the guess.
	NotPresent
	// Present: the letter is in the target but not at this position.
	Present
	// Correct: right letter, right position.
	Correct
)

var ErrBadClue = errors.New("bad clue")

func (c Clue) String() string {
	switch c {
	case NotPresent:
		return "_"
	case Present:
		return "Y"
	case Correct:
		return "G"
	default:
		return " "
	}
}

// Result is the feedback for one guess, one clue per letter.
type Result []Clue

func (r Result) String() string {
	b := make([]byte, len(r))
	for i, c := range r {
		b[i] = c.String()[0]
	}
	return string(b)
}

// Won reports whether every clue is Correct.
func (r Result) Won() bool {
	if len(r) == 0 {
		return false
	}
	for _, c := range r {
		if c != Correct {
			return false
		}
	}
	return true
}

// ParseResult reads clues written as G/+ (correct), Y/~ (present) and
// _/-/./B (not present), case-insensitively.
func ParseResult(s string) (Result, error) {
	r := make(Result, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g', '+':
			r = append(r, Correct)
		case 'Y', 'y', '~':
			r = append(r, Present)
		case '_', '-', '.', 'B', 'b':
			r = append(r, NotPresent)
		default:
			return nil, fmt.Errorf("%w %q at %d in %q", ErrBadClue, s[i], i, s)
		}
	}
	return r, nil
}

// Record is one guess and the clues it received.
type Record struct {
	Word   string
	Result Result
}

func (r Record) String() string {
	return r.Word + ":" + r.Result.String()
}

// ParseRecord reads a record written as "word:clues", e.g. "crate:__Y_G".
func ParseRecord(s string) (Record, error) {
	word, clues, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Record{}, fmt.Errorf("%w: expected word:clues, got %q", ErrBadClue, s)
	}
	word = strings.ToLower(word)
	if !IsWord(word) {
		return Record{}, fmt.Errorf("%w: %q is not a word", ErrBadClue, word)
	}
	result, err := ParseResult(clues)
	if err != nil {
		return Record{}, err
	}
	if len(result) != len(word) {
		return Record{}, fmt.Errorf("%w: %d clues for %q", ErrBadClue, len(result), word)
	}
	return Record{Word: word, Result: result}, nil
}

// History is every guess made so far in a game, oldest first.
type History []Record

// Key is a canonical serialization of h: equal histories have equal keys.
func (h History) Key() string {
	var b strings.Builder
	for i, r := range h {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(r.Word)
		b.WriteByte(':')
		b.WriteString(r.Result.String())
	}
	return b.String()
}

func (h History) String() string {
	parts := make([]string, len(h))
	for i, r := range h {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
