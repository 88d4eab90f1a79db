package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func newPlayCmd(a *app) *cobra.Command {
	var answer string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Let the solver play one simulated game",
		Long: `Plays a simulated game against --answer. Without --answer the day's
answer is picked from the answers list (UTC date + DAILY_SALT).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.corpus()
			if err != nil {
				return err
			}
			if answer == "" {
				answers, err := words.LoadAnswers(a.cfg.AnswersFile)
				if err != nil {
					return err
				}
				if answer, err = daily.Pick(time.Now(), a.cfg.DailySalt, answers); err != nil {
					return err
				}
				a.log.Info().Str("date", daily.DateKey(time.Now())).Msg("playing the daily answer")
			}
			g, err := game.New(answer, a.cfg.MaxRounds)
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), a.driver(c), g, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "secret word to play against")
	return cmd
}

func runPlay(ctx context.Context, d *solver.Driver, g *game.Game, out io.Writer) error {
	rounds, ok, err := solver.Play(ctx, d, g)
	fmt.Fprint(out, g.String())
	if err != nil {
		return fmt.Errorf("play %q: %w", g.Answer, err)
	}
	if !ok {
		fmt.Fprintf(out, "failed to guess %q in %d rounds\n", g.Answer, rounds)
		return nil
	}
	fmt.Fprintf(out, "guessed %q in %d\n", g.Answer, rounds)
	return nil
}
