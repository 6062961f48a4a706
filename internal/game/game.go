// Package game holds the feedback alphabet shared by the solver and the
// game loop, the feedback oracle that judges a guess against a hidden
// target, and a hard-mode aware game state.
package game

import (
	"fmt"
)

const (
	letters = 26

	// MaxWordLen is the longest word a Game can track.
	MaxWordLen = 16

	// green letters are packed into the high bits of a position's clue word
	greenShift = 27
)

// low 16 bits: bitmask of where the letter is
// n: how many there are
type (
	charIndex struct {
		at uint16
		n  uint8
	}
	index [letters]charIndex
)

func newIndex(word string) index {
	var ret index
	for i, c := range []byte(word) {
		ret[c-'a'].at |= 1 << i
		ret[c-'a'].n++
	}
	return ret
}

func (ci charIndex) count() uint8 {
	return ci.n
}

func (ci charIndex) has(i int) bool {
	return ci.at&(1<<i) != 0
}

// Game is a single round of play against a hidden target. It accumulates
// everything the clues so far have revealed so that later guesses can be
// checked against hard-mode rules.
type Game struct {
	target      string
	targetIndex index
	// high 5 bits: (letter that was green)+1, or 0 if none
	// low 26 bits: bitmask of letters that were yellow/gray
	clues []uint32
	// low 7 bits: max times yellow/green
	// high bit: 1 if exact (i.e. also had gray on that guess)
	counts  [letters]uint8
	history History
}

// New starts a game against target. It panics if target is not a
// lowercase word of at most MaxWordLen letters.
func New(target string) *Game {
	if len(target) == 0 || len(target) > MaxWordLen || !IsWord(target) {
		panic(fmt.Sprintf("invalid target: %q", target))
	}
	return &Game{
		target:      target,
		targetIndex: newIndex(target),
		clues:       make([]uint32, len(target)),
	}
}

// IsWord reports whether w consists only of the letters a-z.
func IsWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Score is the feedback oracle: it compares guess to target and returns
// one clue per position. Correct letters are marked first; the remaining
// copies of a letter are marked present left to right until the target's
// count of that letter is used up, and not present after that.
func Score(guess, target string) Result {
	result, _ := New(target).Guess(guess)
	return result
}

// Target returns the hidden word.
func (g *Game) Target() string { return g.target }

// WordLen is the length of every guess in this game.
func (g *Game) WordLen() int { return len(g.target) }

// History returns the guesses made so far together with their clues.
func (g *Game) History() History {
	out := make(History, len(g.history))
	copy(out, g.history)
	return out
}

// Turns is the number of guesses made so far.
func (g *Game) Turns() int { return len(g.history) }

// Guess plays word and returns its clues, and whether it was the target.
func (g *Game) Guess(word string) (result Result, won bool) {
	length := len(g.target)
	if len(word) != length || !IsWord(word) {
		panic(fmt.Sprintf("invalid guess: len(%v) = %v", word, len(word)))
	}

	result = make(Result, length)
	wordIndex := newIndex(word)
	for i, charIndex := range wordIndex {
		targetIndex := g.targetIndex[i]
		switch {
		case charIndex.count() == 0:
			// didn't guess this character
			continue
		case targetIndex.count() == 0:
			// character not in target: every copy is not present
			for j := 0; j < length; j++ {
				if charIndex.has(j) {
					result[j] = NotPresent
					g.clues[j] |= 1 << i
				}
			}
			g.counts[i] = 0x80
		case charIndex.count() <= targetIndex.count():
			// guessed at most the right number of this letter: they'll all be
			// correct/present.
			for j := 0; j < length; j++ {
				if charIndex.has(j) {
					if targetIndex.has(j) {
						result[j] = Correct
						g.clues[j] |= uint32(i+1) << greenShift
					} else {
						result[j] = Present
						g.clues[j] |= 1 << i
					}
				}
			}
			if g.counts[i]&0x80 == 0 && charIndex.count() > g.counts[i] {
				g.counts[i] = charIndex.count()
			}
		default:
			// guessed too many of this letter: correct positions first, then
			// the first n others are present to get the right number, rest
			// are not present.
			need := targetIndex.count()
			for j := 0; j < length; j++ {
				if charIndex.has(j) && targetIndex.has(j) {
					result[j] = Correct
					g.clues[j] |= uint32(i+1) << greenShift
					need--
				}
			}
			for j := 0; j < length; j++ {
				if charIndex.has(j) && !targetIndex.has(j) {
					if need > 0 {
						result[j] = Present
						need--
					} else {
						result[j] = NotPresent
					}
					g.clues[j] |= 1 << i
				}
			}
			g.counts[i] = 0x80 | targetIndex.count()
		}
	}

	g.history = append(g.history, Record{Word: word, Result: result})
	return result, word == g.target
}

func (g *Game) hardModeInfo(word string) (bool, string, byte, int) {
	if len(word) != len(g.target) || !IsWord(word) {
		panic(fmt.Sprintf("invalid guess: len(%v) = %v", word, len(word)))
	}

	wordIndex := newIndex(word)
	for i, n := range g.counts {
		max := n & 0x7f
		c := byte(i + 'a')
		if n&0x80 == 0x80 {
			// if a previous guess had m copies of a letter and k < m were
			// present/correct, the letter must be used exactly k times
			if wordIndex[i].count() != max {
				if max == 0 {
					return false, "can't use %c", c, -1
				}
				return false, "need to use %c exactly %d times", c, int(max)
			}
		} else if wordIndex[i].count() < max {
			return false, "need to use %c at least %d times", c, int(max)
		}
	}

	for j, c := range []byte(word) {
		i := c - 'a'
		clue := g.clues[j]
		// a correct letter must stay in its spot
		green := clue >> greenShift
		if green != 0 && i != byte(green-1) {
			return false, "need %c as letter %d", 'a' + byte(green-1), j + 1
		}
		// a present or absent letter can't go back where it was
		if green == 0 && clue&(1<<i) != 0 {
			return false, "can't use %c as letter %d", c, j + 1
		}
	}

	return true, "", 0, 0
}

// HardModeProblem returns nil if word is a legal hard-mode guess given the
// clues so far, or an error describing the first rule it breaks.
func (g *Game) HardModeProblem(word string) error {
	ok, str, b, n := g.hardModeInfo(word)
	switch {
	case ok:
		return nil
	case n == -1:
		return fmt.Errorf(str, b)
	default:
		return fmt.Errorf(str, b, n)
	}
}

// HardModeOK reports whether word is a legal hard-mode guess.
func (g *Game) HardModeOK(word string) bool {
	ok, _, _, _ := g.hardModeInfo(word)
	return ok
}
