package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
)

func history(t *testing.T, records ...string) game.History {
	t.Helper()
	h := make(game.History, 0, len(records))
	for _, s := range records {
		r, err := game.ParseRecord(s)
		require.NoError(t, err)
		h = append(h, r)
	}
	return h
}

func TestExtract(t *testing.T) {
	set := letterSetOf
	tests := []struct {
		name    string
		history []string
		want    Constraints
	}{
		{
			name: "empty",
			want: Constraints{
				Positional: []byte{0, 0, 0, 0, 0},
				Forbidden:  []LetterSet{0, 0, 0, 0, 0},
			},
		},
		{
			name:    "present and correct",
			history: []string{"crate:__Y_G"},
			want: Constraints{
				Valid:      "ae",
				Invalid:    "crt",
				Positional: []byte{0, 0, 0, 0, 'e'},
				Forbidden:  []LetterSet{set("c"), set("r"), set("a"), set("t"), 0},
			},
		},
		{
			name:    "letter promoted later in the same guess",
			history: []string{"geese:___GG"},
			want: Constraints{
				Valid:      "se",
				Invalid:    "g",
				Positional: []byte{0, 0, 0, 's', 'e'},
				Forbidden:  []LetterSet{set("g"), set("e"), set("e"), 0, 0},
			},
		},
		{
			name:    "repeated letter marked absent is a single",
			history: []string{"speed:__Y_Y"},
			want: Constraints{
				Valid:      "ed",
				Invalid:    "sp",
				Positional: []byte{0, 0, 0, 0, 0},
				Forbidden:  []LetterSet{set("s"), set("p"), set("e"), set("e"), set("d")},
				Singles:    set("e"),
			},
		},
		{
			name:    "repeated letter present twice is a double",
			history: []string{"eerie:YY___"},
			want: Constraints{
				Valid:      "e",
				Invalid:    "ri",
				Positional: []byte{0, 0, 0, 0, 0},
				Forbidden:  []LetterSet{set("e"), set("e"), set("r"), set("i"), set("e")},
				Doubles:    set("e"),
			},
		},
		{
			name:    "letter pinned in two places is a double",
			history: []string{"abcde:G____", "bcdea:____G"},
			want: Constraints{
				Valid:      "a",
				Invalid:    "bcde",
				Positional: []byte{'a', 0, 0, 0, 'a'},
				Forbidden:  []LetterSet{set("b"), set("bc"), set("cd"), set("de"), set("e")},
				Doubles:    set("a"),
			},
		},
		{
			name:    "invalid letter reclassified by a later guess",
			history: []string{"loins:_____", "solid:_Y___"},
			want: Constraints{
				Valid:      "o",
				Invalid:    "linsd",
				Positional: []byte{0, 0, 0, 0, 0},
				Forbidden:  []LetterSet{set("ls"), set("o"), set("il"), set("in"), set("sd")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(history(t, tt.history...), 5)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractInvariants(t *testing.T) {
	h := history(t, "geese:___GG", "speed:_YYY_", "those:__YGG", "whose:GGGGG")
	for i := 1; i <= len(h); i++ {
		c := Extract(h[:i], 5)
		valid, invalid := letterSetOf(c.Valid), letterSetOf(c.Invalid)
		assert.Zero(t, valid&invalid, "valid and invalid overlap")
		assert.Equal(t, c.Doubles, c.Doubles&valid, "doubles must be valid")
		assert.Len(t, c.Positional, 5)
		assert.Len(t, c.Forbidden, 5)
	}
}

func TestExtractIgnoresMalformedRecords(t *testing.T) {
	h := game.History{
		{Word: "cr4te", Result: game.Result{game.NotPresent, game.NotPresent, game.NotPresent, game.NotPresent, game.Correct}},
		{Word: "toolong", Result: game.Result{game.Correct, game.Correct, game.Correct, game.Correct, game.Correct, game.Correct, game.Correct}},
	}
	assert.NotPanics(t, func() { Extract(h, 5) })
}

func TestLetterSet(t *testing.T) {
	s := letterSetOf("hello")
	assert.Equal(t, "ehlo", s.String())
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has('h'))
	assert.False(t, s.Has('z'))
	assert.False(t, s.Has('H'))
}

func TestPattern(t *testing.T) {
	c := Extract(history(t, "crate:__Y_G"), 5)
	assert.Equal(t, "....e", c.Pattern())
}
