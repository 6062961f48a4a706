// Package judge ranks words by how plausible they are as hidden targets.
// The solver treats a Judge as an opaque oracle.
package judge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benjaminjkraft/oldschool-wordle/internal/corpus"
)

type Judge interface {
	PlausibilityScore(word string) float64
}

// FrequencyJudge scores a word by how often it appears in a reference
// text, relative to the most frequent word. Unknown words score 0.
type FrequencyJudge struct {
	freq map[string]float64
}

// NewFrequencyJudge builds a judge from raw word counts.
func NewFrequencyJudge(counts map[string]int) *FrequencyJudge {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	j := &FrequencyJudge{freq: make(map[string]float64, len(counts))}
	if max == 0 {
		return j
	}
	for w, n := range counts {
		j.freq[w] = float64(n) / float64(max)
	}
	return j
}

// LoadFrequencies reads a word-frequency list, one "word count" pair per
// line. Counts for repeated words are summed.
func LoadFrequencies(r io.Reader) (*FrequencyJudge, error) {
	counts := make(map[string]int)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and count", line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse frequency: %w", line, err)
		}
		counts[strings.ToLower(fields[0])] += n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading frequency file: %w", err)
	}
	return NewFrequencyJudge(counts), nil
}

// LoadFrequencyFile is LoadFrequencies on the file at path.
func LoadFrequencyFile(path string) (*FrequencyJudge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frequency file: %w", err)
	}
	defer f.Close()
	return LoadFrequencies(f)
}

func (j *FrequencyJudge) PlausibilityScore(word string) float64 {
	return j.freq[word]
}

// LetterJudge is the fallback when no frequency list is available: words
// made of letters common in the corpus are assumed more plausible. Each
// distinct letter contributes its corpus popularity divided by the corpus
// size.
type LetterJudge struct {
	corpus *corpus.Corpus
}

func NewLetterJudge(c *corpus.Corpus) *LetterJudge {
	return &LetterJudge{corpus: c}
}

func (j *LetterJudge) PlausibilityScore(word string) float64 {
	var seen uint32
	score := 0.0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' || seen&(1<<(c-'a')) != 0 {
			continue
		}
		seen |= 1 << (c - 'a')
		score += float64(j.corpus.Popularity(c))
	}
	return score / float64(j.corpus.Len())
}
