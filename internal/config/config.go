package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/benjaminjkraft/oldschool-wordle/internal/solver"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the oldschool command needs.
type Config struct {
	// Corpus is a word list, one word per line or a JSON array.
	Corpus string `yaml:"corpus"`
	// Frequencies is an optional "word count" list used to rank candidates.
	// Without it candidates are ranked by letter popularity.
	Frequencies string `yaml:"frequencies"`
	// Targets restricts bench and play to these words; defaults to the corpus.
	Targets string `yaml:"targets"`

	Solver  solver.Config `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Bench   BenchConfig   `yaml:"bench"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console output instead of JSON
}

// BenchConfig configures whole-corpus benchmarking.
type BenchConfig struct {
	Workers  int  `yaml:"workers"` // 0 means one per CPU
	Trials   int  `yaml:"trials"`  // games per target
	Progress bool `yaml:"progress"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Solver: solver.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Bench: BenchConfig{
			Trials:   1,
			Progress: true,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OLDSCHOOL_CORPUS"); v != "" {
		c.Corpus = v
	}
	if v := os.Getenv("OLDSCHOOL_FREQUENCIES"); v != "" {
		c.Frequencies = v
	}
	if v := os.Getenv("OLDSCHOOL_HARD"); v != "" {
		if hard, err := strconv.ParseBool(v); err == nil {
			c.Solver.Hard = hard
		}
	}
}

// Validate checks the settings that don't depend on the corpus. The solver
// section is validated against the corpus when the solver is built.
func (c *Config) Validate() error {
	if c.Corpus == "" {
		return fmt.Errorf("%w: corpus path is required", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging level: %v", ErrInvalidConfig, err)
	}
	if c.Bench.Workers < 0 {
		return fmt.Errorf("%w: bench workers must not be negative, got %d", ErrInvalidConfig, c.Bench.Workers)
	}
	if c.Bench.Trials < 1 {
		return fmt.Errorf("%w: bench trials must be positive, got %d", ErrInvalidConfig, c.Bench.Trials)
	}
	return nil
}
