package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func newRankCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "rank [guess pattern]...",
		Short: "Print the best guesses after the given feedback",
		Example: `  wordle-solver rank
  wordle-solver rank tares wwmwc least cwwmw --top 5`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("%w: arguments must be guess/pattern pairs", solver.ErrInvalidInput)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.corpus()
			if err != nil {
				return err
			}
			return runRank(cmd.Context(), a.scorer(), solver.NewCandidateSet(c), args, top, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of guesses to print (0 for all)")
	return cmd
}

// runRank narrows set by each guess/pattern pair in order, then prints the top ranked guesses.
func runRank(ctx context.Context, sc *solver.Scorer, set *solver.CandidateSet, pairs []string, top int, out io.Writer) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		p, err := game.ParsePattern(pairs[i+1])
		if err != nil {
			return fmt.Errorf("%w: %v", solver.ErrInvalidInput, err)
		}
		if set, err = solver.Filter(set, pairs[i], p); err != nil {
			return fmt.Errorf("after %s %s: %w", pairs[i], pairs[i+1], err)
		}
	}

	scores, err := sc.RankAll(ctx, set)
	if err != nil {
		return err
	}
	if top > 0 && top < len(scores) {
		scores = scores[:top]
	}

	fmt.Fprintf(out, "%d candidates\n", set.Len())
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tWORD\tVALUE\tBITS\tP")
	for i, s := range scores {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.3f\t%.4f\n", i+1, s.Word, s.Value, s.Entropy, s.Probability)
	}
	return tw.Flush()
}
