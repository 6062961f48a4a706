package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		guess, target string
		want          string
	}{
		{"crate", "gauze", "__Y_G"},
		{"gauze", "gauze", "GGGGG"},
		{"geese", "those", "___GG"},
		{"speed", "abide", "__Y_Y"},
		{"eerie", "tweed", "YY___"},
		{"lolly", "hello", "_YGG_"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.guess, tt.target).String())
		})
	}
}

func TestGuessWon(t *testing.T) {
	g := New("gauze")
	result, won := g.Guess("crate")
	assert.False(t, won)
	assert.False(t, result.Won())

	result, won = g.Guess("gauze")
	assert.True(t, won)
	assert.True(t, result.Won())
	assert.Equal(t, 2, g.Turns())
	assert.Equal(t, "crate:__Y_G gauze:GGGGG", g.History().String())
}

func TestGuessPanicsOnWrongLength(t *testing.T) {
	g := New("gauze")
	assert.Panics(t, func() { g.Guess("gauzes") })
	assert.Panics(t, func() { New("Gauze") })
}

func TestHardMode(t *testing.T) {
	g := New("gauze")
	g.Guess("crate")

	tests := []struct {
		word string
		want string
	}{
		{"gauze", ""},
		{"mauve", ""},
		{"tread", "can't use r"},
		{"abase", "can't use a as letter 3"},
		{"gauzy", "need to use e at least 1 times"},
		{"ideal", "need e as letter 5"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			err := g.HardModeProblem(tt.word)
			if tt.want == "" {
				assert.NoError(t, err)
				assert.True(t, g.HardModeOK(tt.word))
				return
			}
			assert.EqualError(t, err, tt.want)
			assert.False(t, g.HardModeOK(tt.word))
		})
	}
}

func TestHardModeExactCount(t *testing.T) {
	g := New("abide")
	g.Guess("speed")

	assert.EqualError(t, g.HardModeProblem("eider"), "need to use e exactly 1 times")
	assert.NoError(t, g.HardModeProblem("abide"))
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord("Crate:__y-+")
	require.NoError(t, err)
	assert.Equal(t, "crate", r.Word)
	assert.Equal(t, Result{NotPresent, NotPresent, Present, NotPresent, Correct}, r.Result)

	_, err = ParseRecord("crate")
	assert.ErrorIs(t, err, ErrBadClue)
	_, err = ParseRecord("crate:__Y_")
	assert.ErrorIs(t, err, ErrBadClue)
	_, err = ParseRecord("crate:__Q_G")
	assert.ErrorIs(t, err, ErrBadClue)
}

func TestHistoryKey(t *testing.T) {
	a := History{
		{Word: "crate", Result: Result{NotPresent, NotPresent, Present, NotPresent, Correct}},
		{Word: "loins", Result: Result{NotPresent, NotPresent, NotPresent, NotPresent, NotPresent}},
	}
	b := History{
		{Word: "crate", Result: Result{NotPresent, NotPresent, Present, NotPresent, Correct}},
	}
	assert.Equal(t, "crate:__Y_G|loins:_____", a.Key())
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, b.Key(), a[:1].Key())
	assert.Equal(t, "", History(nil).Key())
}
