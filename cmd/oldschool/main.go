// Command oldschool plays Wordle with a set of old school heuristics: it
// suggests guesses from clues, solves a target, lets a human play and
// benchmarks itself over a whole word list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benjaminjkraft/oldschool-wordle/internal/config"
	"github.com/benjaminjkraft/oldschool-wordle/internal/corpus"
	"github.com/benjaminjkraft/oldschool-wordle/internal/judge"
	"github.com/benjaminjkraft/oldschool-wordle/internal/logging"
	"github.com/benjaminjkraft/oldschool-wordle/internal/solver"
)

// app is the state shared by every command once PersistentPreRunE ran.
type app struct {
	// flags
	configPath  string
	verbose     bool
	corpusPath  string
	freqPath    string
	targetsPath string
	hard        bool

	cfg     *config.Config
	logger  *zap.Logger
	words   *corpus.Corpus
	judge   judge.Judge
	targets []string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "oldschool",
		Short: "Heuristic Wordle solver",
		Long: `oldschool solves Wordle without search trees or entropy: it narrows the
word list from the clues, ranks what is left by plausibility and, when too
many words remain, plays a probe word chosen to rule out as many letters as
possible.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "oldschool.yaml", "path to the YAML config")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log the solver's reasoning")
	flags.StringVar(&a.corpusPath, "corpus", "", "word list (overrides config)")
	flags.StringVar(&a.freqPath, "frequencies", "", "word frequency list (overrides config)")
	flags.StringVar(&a.targetsPath, "targets", "", "target word list for play and bench (overrides config)")
	flags.BoolVar(&a.hard, "hard", true, "play in hard mode (overrides config)")

	rootCmd.AddCommand(
		a.solveCmd(),
		a.suggestCmd(),
		a.playCmd(),
		a.benchCmd(),
		a.authorCmd(),
		a.initConfigCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.corpusPath != "" {
		cfg.Corpus = a.corpusPath
	}
	if a.freqPath != "" {
		cfg.Frequencies = a.freqPath
	}
	if a.targetsPath != "" {
		cfg.Targets = a.targetsPath
	}
	if cmd.Flags().Changed("hard") {
		cfg.Solver.Hard = a.hard
	}
	if a.verbose {
		cfg.Solver.Verbose = true
	}
	a.cfg = cfg

	// init-config writes whatever we have, corpus or not
	if cmd.Name() == "init-config" {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Development, a.verbose)
	if err != nil {
		return err
	}

	a.words, err = corpus.LoadFile(cfg.Corpus)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	a.logger.Debug("loaded corpus", zap.String("path", cfg.Corpus), zap.Int("words", a.words.Len()))

	if cfg.Frequencies != "" {
		fj, err := judge.LoadFrequencyFile(cfg.Frequencies)
		if err != nil {
			return fmt.Errorf("failed to load frequencies: %w", err)
		}
		a.judge = fj
	}

	a.targets = a.words.Words()
	if cfg.Targets != "" {
		t, err := corpus.LoadFile(cfg.Targets)
		if err != nil {
			return fmt.Errorf("failed to load targets: %w", err)
		}
		if t.WordLen() != a.words.WordLen() {
			return fmt.Errorf("targets have %d letters, corpus words have %d", t.WordLen(), a.words.WordLen())
		}
		a.targets = t.Words()
	}
	return nil
}

// newSolver builds a fresh solver; the corpus and judge are shared.
func (a *app) newSolver() (*solver.Solver, error) {
	return solver.New(a.words, a.judge, a.cfg.Solver, solver.WithLogger(a.logger))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
