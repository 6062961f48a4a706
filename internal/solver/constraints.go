package solver

import (
	"math/bits"
	"strings"

	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
)

const letters = 26

// LetterSet is a set of the letters a-z, one bit per letter.
type LetterSet uint32

func letterSetOf(s string) LetterSet {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		set.Add(s[i])
	}
	return set
}

func (s LetterSet) Has(c byte) bool {
	return c >= 'a' && c <= 'z' && s&(1<<(c-'a')) != 0
}

func (s *LetterSet) Add(c byte) {
	if c >= 'a' && c <= 'z' {
		*s |= 1 << (c - 'a')
	}
}

func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for i := 0; i < letters; i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// letterCounts returns how often each letter occurs in w, and the distinct
// letters of w in first-occurrence order.
func letterCounts(w string) (counts [letters]uint8, distinct []byte) {
	distinct = make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			continue
		}
		c := w[i] - 'a'
		if counts[c] == 0 {
			distinct = append(distinct, w[i])
		}
		counts[c]++
	}
	return counts, distinct
}

// Constraints is everything a history of clues reveals about the target.
type Constraints struct {
	// Valid holds letters known to be in the target, in the order they were
	// first seen.
	Valid string
	// Invalid holds letters known to be absent, in the order they were first
	// seen. A letter is never both Valid and Invalid.
	Invalid string
	// Positional pins a letter to each position, or 0 where unknown.
	Positional []byte
	// Forbidden lists, per position, letters that cannot go there.
	Forbidden []LetterSet
	// Singles occur exactly once in the target.
	Singles LetterSet
	// Doubles occur at least twice in the target.
	Doubles LetterSet
}

func newConstraints(wordLen int) Constraints {
	return Constraints{
		Positional: make([]byte, wordLen),
		Forbidden:  make([]LetterSet, wordLen),
	}
}

// Extract derives the constraints implied by h for words of length
// wordLen. It is a pure function of its arguments.
//
// Membership only ever grows: once a letter has been seen as present or
// correct it stays valid, and a letter that was marked invalid earlier is
// promoted once any clue shows it present. A not-present clue on a letter
// already known to be valid is read as a multiplicity hint instead of an
// absence.
func Extract(h game.History, wordLen int) Constraints {
	c := newConstraints(wordLen)
	var valid, invalid LetterSet

	for _, r := range h {
		counts, _ := letterCounts(r.Word)
		// valid copies of each repeated letter seen so far in this guess
		var seenValid [letters]uint8

		for i := 0; i < len(r.Word) && i < len(r.Result) && i < wordLen; i++ {
			l := r.Word[i]
			if l < 'a' || l > 'z' {
				continue
			}
			switch r.Result[i] {
			case game.NotPresent:
				switch {
				case !valid.Has(l) && !invalid.Has(l):
					invalid.Add(l)
					c.Invalid += string(l)
				case valid.Has(l) && counts[l-'a'] == 2:
					// only doubles are handled
					c.Singles.Add(l)
				}
				c.Forbidden[i].Add(l)

			case game.Present, game.Correct:
				if !valid.Has(l) {
					valid.Add(l)
					c.Valid += string(l)
				}
				if counts[l-'a'] > 1 && seenValid[l-'a'] > 0 {
					c.Doubles.Add(l)
				}
				if r.Result[i] == game.Present {
					c.Forbidden[i].Add(l)
				} else {
					for x, p := range c.Positional {
						if x != i && p == l {
							c.Doubles.Add(l)
						}
					}
					c.Positional[i] = l
				}
				if counts[l-'a'] > 1 {
					seenValid[l-'a']++
				}
			}
		}
	}

	if invalid&valid != 0 {
		var kept strings.Builder
		for i := 0; i < len(c.Invalid); i++ {
			if !valid.Has(c.Invalid[i]) {
				kept.WriteByte(c.Invalid[i])
			}
		}
		c.Invalid = kept.String()
	}
	return c
}

// Pattern renders the pinned positions, e.g. "....e".
func (c Constraints) Pattern() string {
	b := make([]byte, len(c.Positional))
	for i, p := range c.Positional {
		if p == 0 {
			b[i] = '.'
		} else {
			b[i] = p
		}
	}
	return string(b)
}

// Match reports whether word is consistent with every constraint.
func (c Constraints) Match(word string) bool {
	return newMatcher(c).match(word)
}

type matcher struct {
	Constraints
	valid, invalid LetterSet
}

func newMatcher(c Constraints) matcher {
	return matcher{
		Constraints: c,
		valid:       letterSetOf(c.Valid),
		invalid:     letterSetOf(c.Invalid),
	}
}

func (m matcher) match(word string) bool {
	if len(word) != len(m.Positional) {
		return false
	}
	var counts [letters]uint8
	var present LetterSet
	for i := 0; i < len(word); i++ {
		l := word[i]
		if l < 'a' || l > 'z' || m.invalid.Has(l) {
			return false
		}
		if p := m.Positional[i]; p != 0 && p != l {
			return false
		}
		if m.Forbidden[i].Has(l) {
			return false
		}
		counts[l-'a']++
		present.Add(l)
	}
	if present&m.valid != m.valid {
		return false
	}
	for i := 0; i < letters; i++ {
		if m.Singles&(1<<i) != 0 && counts[i] != 1 {
			return false
		}
		if m.Doubles&(1<<i) != 0 && counts[i] < 2 {
			return false
		}
	}
	return true
}
