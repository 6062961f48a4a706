package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/benjaminjkraft/oldschool-wordle/internal/corpus"
)

// Candidates are the corpus words consistent with a set of constraints,
// in corpus order.
type Candidates struct {
	Words   []string
	indices *bitset.BitSet
}

// Filter returns the corpus words matching c in one pass over the corpus.
func Filter(words *corpus.Corpus, c Constraints) Candidates {
	m := newMatcher(c)
	out := Candidates{indices: bitset.New(uint(words.Len()))}
	for i, w := range words.Words() {
		if m.match(w) {
			out.Words = append(out.Words, w)
			out.indices.Set(uint(i))
		}
	}
	return out
}

func (c Candidates) Len() int { return len(c.Words) }

// HasIndex reports whether the corpus word at index i is a candidate.
func (c Candidates) HasIndex(i int) bool {
	return c.indices != nil && i >= 0 && c.indices.Test(uint(i))
}

// Has reports whether word is a candidate.
func (c Candidates) Has(words *corpus.Corpus, word string) bool {
	i, ok := words.Index(word)
	return ok && c.HasIndex(i)
}

// key identifies the candidate list by its exact contents and order.
func (c Candidates) key() string {
	return strings.Join(c.Words, ",")
}
