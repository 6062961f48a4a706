// Package bench plays the solver against every target word and summarizes
// how many guesses it needed.
package bench

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/benjaminjkraft/oldschool-wordle/internal/game"
	"github.com/benjaminjkraft/oldschool-wordle/internal/solver"
)

// m bounds the guesses per game; a game that reaches it counts as m-1.
const m = 100

// Game is the outcome of one game.
type Game struct {
	Target  string
	History game.History
	Won     bool
	// HardModeViolations counts guesses that broke hard-mode rules.
	HardModeViolations int
}

// Guesses is the number of guesses played.
func (g Game) Guesses() int { return len(g.History) }

// Play runs a single game of s against target. s is reset first.
func Play(s *solver.Solver, target string) Game {
	s.Reset()
	g := game.New(target)
	out := Game{Target: target}
	for g.Turns() < m-1 {
		guess := s.Guess(g.History())
		if g.HardModeProblem(guess) != nil {
			out.HardModeViolations++
		}
		if _, won := g.Guess(guess); won {
			out.Won = true
			break
		}
	}
	out.History = g.History()
	return out
}

type Options struct {
	// Workers bounds the games played at once; 0 means one per CPU.
	Workers int
	// Trials is the number of games per target.
	Trials int
	// Progress, if set, receives a progress bar.
	Progress io.Writer
	Logger   *zap.Logger
}

// Report holds, per target, how many games took each number of guesses.
type Report struct {
	Results            map[string]*[m]int
	HardModeViolations int
	Lost               []string
}

// Run plays every target opts.Trials times. newSolver is called once per
// target, so solvers are never shared between goroutines.
func Run(ctx context.Context, targets []string, newSolver func() (*solver.Solver, error), opts Options) (*Report, error) {
	if opts.Trials < 1 {
		opts.Trials = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	report := &Report{Results: make(map[string]*[m]int, len(targets))}
	for _, w := range targets {
		if len(w) == 0 || len(w) > game.MaxWordLen || !game.IsWord(w) {
			return nil, fmt.Errorf("invalid target %q", w)
		}
		report.Results[w] = new([m]int)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(targets)*opts.Trials,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("playing"),
			progressbar.OptionShowCount())
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, target := range targets {
		if ctx.Err() != nil {
			break
		}
		target := target
		g.Go(func() error {
			s, err := newSolver()
			if err != nil {
				return err
			}
			if len(target) != s.WordLen() {
				return fmt.Errorf("target %q has %d letters, corpus words have %d", target, len(target), s.WordLen())
			}
			for j := 0; j < opts.Trials; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				played := Play(s, target)
				report.Results[target][played.Guesses()]++

				mu.Lock()
				report.HardModeViolations += played.HardModeViolations
				if !played.Won {
					report.Lost = append(report.Lost, target)
				}
				mu.Unlock()

				if bar != nil {
					_ = bar.Add(1)
				}
				log.Debug("played", zap.String("target", target), zap.Stringer("history", played.History))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	slices.Sort(report.Lost)
	return report, nil
}

type metricImpl[T constraints.Ordered] struct {
	name        string
	badnessFunc func(*[m]int) T
}

func (mt *metricImpl[T]) run(results map[string]*[m]int) string {
	var worst T
	var worstWords []string
	for w, r := range results {
		badness := mt.badnessFunc(r)
		switch {
		case len(worstWords) == 0 || worst < badness:
			worstWords = []string{w}
			worst = badness
		case worst == badness:
			worstWords = append(worstWords, w)
		}
	}
	slices.Sort(worstWords)
	return fmt.Sprintf("worst %v: %v (%v)", mt.name, worst, strings.Join(worstWords, " "))
}

type metric interface {
	run(results map[string]*[m]int) string
}

func metrics(rounds int) []metric {
	return []metric{
		&metricImpl[int]{"worst", func(r *[m]int) int {
			for i := m - 1; i >= 0; i-- {
				if r[i] > 0 {
					return i
				}
			}
			return 0
		}},
		&metricImpl[int]{"best", func(r *[m]int) int {
			for i := 0; i < m; i++ {
				if r[i] > 0 {
					return i
				}
			}
			return 0
		}},
		&metricImpl[float64]{"average", func(r *[m]int) float64 {
			sum := 0
			ct := 0
			for i := 0; i < m; i++ {
				sum += i * r[i]
				ct += r[i]
			}
			if ct == 0 {
				return 0
			}
			return float64(sum) / float64(ct)
		}},
		&metricImpl[float64]{"not-in-" + strconv.Itoa(rounds), func(r *[m]int) float64 {
			win := 0
			loss := 0
			for i := 0; i <= rounds && i < m; i++ {
				win += r[i]
			}
			for i := rounds + 1; i < m; i++ {
				loss += r[i]
			}
			if win+loss == 0 {
				return 0
			}
			return 100 * float64(loss) / float64(win+loss)
		}},
	}
}

// Distribution sums the results over every target: how many games took
// each number of guesses.
func (r *Report) Distribution() [m]int {
	var total [m]int
	for _, res := range r.Results {
		for i, n := range res {
			total[i] += n
		}
	}
	return total
}

// Summary describes the report for a game of the given number of rounds:
// the distribution of guesses, then the targets that did worst under each
// metric.
func (r *Report) Summary(rounds int) []string {
	dist := r.Distribution()
	n := 0
	for _, c := range dist {
		n += c
	}
	var lines []string
	w := "%" + strconv.Itoa(len(strconv.Itoa(n))) + "d"
	cum := 0
	for i, c := range dist {
		if c == 0 {
			continue
		}
		cum += c
		lines = append(lines, fmt.Sprintf(w+": "+w+"/"+w+" (cum. "+w+"/"+w+")", i, c, n, cum, n))
	}
	for _, metric := range metrics(rounds) {
		lines = append(lines, metric.run(r.Results))
	}
	lines = append(lines, fmt.Sprintf("hard mode violations: %d", r.HardModeViolations))
	if len(r.Lost) > 0 {
		lines = append(lines, "lost: "+strings.Join(r.Lost, " "))
	}
	return lines
}
