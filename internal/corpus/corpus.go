// Package corpus holds the fixed, ordered universe of legal words for a
// game, together with the letter popularity table computed from it.
//
// A Corpus is immutable once built and safe to share between goroutines.
// Word order is significant: it is the tie-break order for every ranking
// the solver performs.
package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
)

var (
	ErrEmptyCorpus = errors.New("empty corpus")
	ErrWordLength  = errors.New("word length")
	ErrWordChar    = errors.New("word char")
)

const letters = 26

type Corpus struct {
	words      []string
	index      map[string]int
	popularity [letters]int
	wordLen    int
}

// New builds a corpus from words. Words are trimmed and lowercased; later
// duplicates are dropped so the first occurrence keeps its position.
func New(words []string) (*Corpus, error) {
	c := &Corpus{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !game.IsWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrWordChar, w)
		}
		if c.wordLen == 0 {
			if len(w) > game.MaxWordLen {
				return nil, fmt.Errorf("%w: %q is longer than %d", ErrWordLength, w, game.MaxWordLen)
			}
			c.wordLen = len(w)
		} else if len(w) != c.wordLen {
			return nil, fmt.Errorf("%w: %q is not %d letters", ErrWordLength, w, c.wordLen)
		}
		if !seen.Add(w) {
			continue
		}
		c.index[w] = len(c.words)
		c.words = append(c.words, w)
		for i := 0; i < len(w); i++ {
			c.popularity[w[i]-'a']++
		}
	}
	if len(c.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// Load reads one word per line. Blank lines and lines starting with '#'
// are skipped; only the first field of a line is used, so word-frequency
// lists load as plain corpora.
func Load(r io.Reader) (*Corpus, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return New(words)
}

// LoadFile loads a corpus from path. Files ending in .json must hold a
// JSON array of words; anything else is read with Load.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var words []string
		if err := json.NewDecoder(f).Decode(&words); err != nil {
			return nil, fmt.Errorf("failed to parse corpus %s: %w", path, err)
		}
		return New(words)
	}
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Words returns the corpus in order. The slice must not be modified.
func (c *Corpus) Words() []string { return c.words }

func (c *Corpus) Len() int { return len(c.words) }

// WordLen is the length shared by every word in the corpus.
func (c *Corpus) WordLen() int { return c.wordLen }

func (c *Corpus) At(i int) string { return c.words[i] }

// Index returns the position of word in the corpus.
func (c *Corpus) Index(word string) (int, bool) {
	i, ok := c.index[word]
	return i, ok
}

func (c *Corpus) Contains(word string) bool {
	_, ok := c.index[word]
	return ok
}

// Popularity is the number of times letter occurs across the whole corpus,
// counting repeats within a word.
func (c *Corpus) Popularity(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return c.popularity[letter-'a']
}
