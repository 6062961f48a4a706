package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/benjaminjkraft/oldschool-wordle/internal/bench"
	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
)

func (a *app) checkWord(w string) error {
	if len(w) != a.words.WordLen() || !game.IsWord(w) {
		return fmt.Errorf("%q is not a %d letter lowercase word", w, a.words.WordLen())
	}
	return nil
}

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <target>",
		Short: "Watch the solver find a target word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.ToLower(args[0])
			if err := a.checkWord(target); err != nil {
				return err
			}
			s, err := a.newSolver()
			if err != nil {
				return err
			}

			played := bench.Play(s, target)
			out := cmd.OutOrStdout()
			for i, r := range played.History {
				fmt.Fprintf(out, "Guess %d: %v\n", i+1, r.Word)
				fmt.Fprintf(out, "Clues %d: %v\n", i+1, r.Result)
			}
			if played.Won {
				fmt.Fprintf(out, "Solved in %d\n", played.Guesses())
			} else {
				fmt.Fprintf(out, "Gave up after %d\n", played.Guesses())
			}
			if played.HardModeViolations > 0 {
				fmt.Fprintf(out, "Hard mode violations: %d\n", played.HardModeViolations)
			}
			return nil
		},
	}
}

func (a *app) suggestCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "suggest [word:clues...]",
		Short: "Suggest the next guess from the clues so far",
		Long: `Clues are one character per letter: G or + for the right letter in the
right place, Y or ~ for a letter elsewhere in the word and _ - . or B for a
letter not in the word. For example:

  oldschool suggest crate:__Y_G loins:_____`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := make(game.History, 0, len(args))
			for _, arg := range args {
				r, err := game.ParseRecord(arg)
				if err != nil {
					return err
				}
				if err := a.checkWord(r.Word); err != nil {
					return err
				}
				h = append(h, r)
			}
			s, err := a.newSolver()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list {
				cands := s.Candidates(h)
				fmt.Fprintf(out, "Valid words: %d\n", len(cands))
				fmt.Fprintln(out, strings.Join(cands, " "))
			}
			fmt.Fprintln(out, s.Guess(h))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "also list the words that fit the clues")
	return cmd
}

// playCmd lets a human guess a random target, with the solver on hand for
// hints.
func (a *app) playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game; enter ? for a hint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSolver()
			if err != nil {
				return err
			}
			target := a.targets[frand.Intn(len(a.targets))]
			g := game.New(target)
			rounds := s.Config().Rounds

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			for g.Turns() < rounds {
				i := g.Turns() + 1
				fmt.Fprintln(out, "Valid words:", len(s.Candidates(g.History())))
				fmt.Fprintf(out, "Guess %d: ", i)
				if !in.Scan() {
					if err := in.Err(); err != nil {
						return fmt.Errorf("read failed: %w", err)
					}
					break
				}
				guess := strings.ToLower(strings.TrimSpace(in.Text()))
				if guess == "?" {
					fmt.Fprintln(out, "Hint:", s.Guess(g.History()))
					continue
				}
				if a.checkWord(guess) != nil || !a.words.Contains(guess) {
					fmt.Fprintln(out, "Invalid guess:", guess)
					continue
				}
				if s.Config().Hard {
					if err := g.HardModeProblem(guess); err != nil {
						fmt.Fprintln(out, "Hard mode:", err)
						continue
					}
				}

				result, won := g.Guess(guess)
				fmt.Fprintf(out, "Clues %d: %v\n", i, result)
				if won {
					fmt.Fprintln(out, "You won!")
					return nil
				}
			}
			fmt.Fprintln(out, "The word was", target)
			return nil
		},
	}
}

func (a *app) benchCmd() *cobra.Command {
	var workers, trials int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every target word and report how the solver did",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := bench.Options{
				Workers: a.cfg.Bench.Workers,
				Trials:  a.cfg.Bench.Trials,
				Logger:  a.logger,
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("trials") {
				opts.Trials = trials
			}
			if a.cfg.Bench.Progress {
				opts.Progress = cmd.ErrOrStderr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			report, err := bench.Run(ctx, a.targets, a.newSolver, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.Progress != nil {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			for _, line := range report.Summary(a.cfg.Solver.Rounds) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "games played at once (0 means one per CPU)")
	cmd.Flags().IntVarP(&trials, "trials", "n", 1, "games per target")
	return cmd
}

func (a *app) authorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author",
		Short: "Print who came up with the heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSolver()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Author())
			return nil
		},
	}
}

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(a.configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", a.configPath)
			return nil
		},
	}
}
