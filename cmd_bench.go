package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		limit    int
		dbPath   string
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every previous answer and report how many rounds the solver needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				a.cfg.DBPath = dbPath
			}
			c, err := a.corpus()
			if err != nil {
				return err
			}
			answers, err := words.LoadAnswers(a.cfg.AnswersFile)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(answers) {
				answers = answers[:limit]
			}

			out := cmd.OutOrStdout()
			r := &bench.Runner{
				Corpus:    c,
				Scorer:    a.scorer(),
				Opening:   a.cfg.OpeningGuess,
				MaxRounds: a.cfg.MaxRounds,
				Log:       a.log,
				OnResult: func(res bench.Result) {
					if res.Solved {
						fmt.Fprintf(out, "guessed '%s' in %d\n", res.Answer, res.Rounds)
					} else {
						fmt.Fprintf(out, "failed to guess '%s'\n", res.Answer)
					}
				},
			}
			if progress {
				r.Progress = cmd.ErrOrStderr()
			}

			started := time.Now()
			sum, err := r.Run(cmd.Context(), answers)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "average score %.2f (%d/%d solved)\n", sum.Average(), sum.Solved, sum.Games)

			if a.cfg.DBPath == "" {
				return nil
			}
			return a.recordBench(cmd.Context(), out, bench.Run{
				StartedAt:  started,
				GuessPool:  string(a.cfg.Pool()),
				Strategy:   string(a.cfg.ScoringStrategy()),
				Opening:    a.cfg.OpeningGuess,
				CorpusSize: c.Len(),
			}, sum)
		},
	}
	cmd.Flags().IntVar(&limit, "max", 0, "play at most this many answers")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file to record results in (default $SOLVER_DB)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}

// recordBench stores the run and prints the best runs and hardest answers so far.
func (a *app) recordBench(ctx context.Context, out io.Writer, run bench.Run, sum bench.Summary) error {
	db, err := bench.Open(a.cfg.DBPath, assets.Migrations(), a.log)
	if err != nil {
		return err
	}
	defer db.Close()

	st := bench.NewStore(db)
	id, err := st.SaveRun(ctx, run, sum)
	if err != nil {
		return fmt.Errorf("save bench run: %w", err)
	}
	a.log.Info().Int64("run", id).Str("db", a.cfg.DBPath).Msg("bench run recorded")

	best, err := st.BestRuns(ctx, 5)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "best runs:")
	for _, r := range best {
		fmt.Fprintf(out, "  #%d %s pool=%s strategy=%s opening=%q %.2f (%d/%d)\n",
			r.ID, r.StartedAt, r.GuessPool, r.Strategy, r.Opening, r.Average, r.Solved, r.Games)
	}

	hard, err := st.HardestAnswers(ctx, 5)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "hardest answers:")
	for _, h := range hard {
		fmt.Fprintf(out, "  %s %.2f rounds, %d/%d failed\n", h.Answer, h.AvgRounds, h.Failures, h.Games)
	}
	return nil
}
