package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OLDSCHOOL_CORPUS", "")
	t.Setenv("OLDSCHOOL_FREQUENCIES", "")
	t.Setenv("OLDSCHOOL_HARD", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"crate", "loins", "dumpy", "wager", "beefy"}, cfg.Solver.BaseGuesses)
	assert.Equal(t, 100, cfg.Solver.ExcludeWordsThreshold)
	assert.Equal(t, 7, cfg.Solver.ExcludeLettersThreshold)
	assert.Equal(t, 11, cfg.Solver.PopularityThreshold)
	assert.True(t, cfg.Solver.Hard)
	assert.Equal(t, 6, cfg.Solver.Rounds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1, cfg.Bench.Trials)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "oldschool.yaml")
	data := `
corpus: words.txt
solver:
  base_guesses: [sorta, uncle, midgy, wheep, hijab]
  pop_thrs: 5
  hard: false
bench:
  workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Corpus)
	assert.Equal(t, []string{"sorta", "uncle", "midgy", "wheep", "hijab"}, cfg.Solver.BaseGuesses)
	assert.Equal(t, 5, cfg.Solver.PopularityThreshold)
	assert.False(t, cfg.Solver.Hard)
	// untouched keys keep their defaults
	assert.Equal(t, 100, cfg.Solver.ExcludeWordsThreshold)
	assert.Equal(t, 6, cfg.Solver.Rounds)
	assert.Equal(t, 4, cfg.Bench.Workers)
	assert.Equal(t, 1, cfg.Bench.Trials)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oldschool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: [\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "oldschool.yaml")
	cfg := DefaultConfig()
	cfg.Corpus = "words.json"
	cfg.Solver.Seed = 42
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("corpus and frequencies", func(t *testing.T) {
		t.Setenv("OLDSCHOOL_CORPUS", "/tmp/words.txt")
		t.Setenv("OLDSCHOOL_FREQUENCIES", "/tmp/freq.txt")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/words.txt", cfg.Corpus)
		assert.Equal(t, "/tmp/freq.txt", cfg.Frequencies)
	})

	t.Run("hard mode", func(t *testing.T) {
		t.Setenv("OLDSCHOOL_HARD", "false")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Solver.Hard)
	})

	t.Run("unparseable hard mode is ignored", func(t *testing.T) {
		t.Setenv("OLDSCHOOL_HARD", "sometimes")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Solver.Hard)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Corpus = "words.txt"
		return cfg
	}
	assert.NoError(t, valid().Validate())

	tests := map[string]func(*Config){
		"no corpus":        func(c *Config) { c.Corpus = "" },
		"bad level":        func(c *Config) { c.Logging.Level = "loud" },
		"negative workers": func(c *Config) { c.Bench.Workers = -1 },
		"no trials":        func(c *Config) { c.Bench.Trials = 0 },
	}
	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
