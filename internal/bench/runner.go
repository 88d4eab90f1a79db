// apps/go-solver/internal/bench/runner.go
//
// Benchmark runner: plays one simulated game per answer and aggregates the
// number of rounds the solver needed.
//
// A game that fails (rounds exhausted, or the answer is not in the corpus and
// feedback becomes inconsistent) is counted as unsolved and the run continues.
// Only context cancellation stops a run early.

package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Result is the outcome of one simulated game.
type Result struct {
	Answer  string
	Rounds  int
	Solved  bool
	Guesses []string
	Err     error
}

// Summary aggregates a run.
type Summary struct {
	Games       int
	Solved      int
	TotalRounds int // rounds of solved games only
	Elapsed     time.Duration
	Results     []Result
}

// Average returns the mean rounds over solved games.
func (s Summary) Average() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Solved)
}

// Runner plays benchmark games over a shared corpus.
type Runner struct {
	Corpus    *solver.Corpus
	Scorer    *solver.Scorer
	Opening   string
	MaxRounds int
	Log       zerolog.Logger
	// Progress receives a progress bar when non-nil.
	Progress io.Writer
	// OnResult is called after every game when non-nil.
	OnResult func(Result)
}

// Run plays every answer in order.
func (r *Runner) Run(ctx context.Context, answers []string) (Summary, error) {
	start := time.Now()
	sum := Summary{Results: make([]Result, 0, len(answers))}

	var bar *progressbar.ProgressBar
	if r.Progress != nil {
		bar = progressbar.NewOptions(len(answers),
			progressbar.OptionSetWriter(r.Progress),
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, answer := range answers {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		res, err := r.playOne(ctx, answer)
		if err != nil {
			return sum, err
		}

		sum.Games++
		if res.Solved {
			sum.Solved++
			sum.TotalRounds += res.Rounds
		}
		sum.Results = append(sum.Results, res)

		if r.OnResult != nil {
			r.OnResult(res)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	sum.Elapsed = time.Since(start)
	r.Log.Info().
		Int("games", sum.Games).
		Int("solved", sum.Solved).
		Float64("average", sum.Average()).
		Dur("elapsed", sum.Elapsed).
		Msg("bench finished")
	return sum, nil
}

// playOne plays a single game. Only context errors are returned; game
// failures are reported in the Result.
func (r *Runner) playOne(ctx context.Context, answer string) (Result, error) {
	g, err := game.New(answer, r.MaxRounds)
	if err != nil {
		r.Log.Warn().Err(err).Str("answer", answer).Msg("skipping answer")
		return Result{Answer: answer, Err: err}, nil
	}

	d := solver.NewDriver(r.Corpus, solver.Options{
		Scorer:       r.Scorer,
		OpeningGuess: r.Opening,
		Logger:       r.Log.Level(zerolog.WarnLevel),
	})
	rounds, ok, err := solver.Play(ctx, d, g)
	if err != nil && ctx.Err() != nil {
		return Result{}, fmt.Errorf("play %q: %w", answer, ctx.Err())
	}
	if err != nil {
		r.Log.Warn().Err(err).Str("answer", answer).Msg("game failed")
	}
	return Result{
		Answer:  g.Answer,
		Rounds:  rounds,
		Solved:  ok,
		Guesses: append([]string(nil), g.Guesses...),
		Err:     err,
	}, nil
}
