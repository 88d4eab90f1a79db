package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// maxListed bounds the "?" candidate listing.
const maxListed = 30

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Interactively solve a puzzle: enter \"<guess> <pattern>\" after each guess",
		Long: `Suggests a guess, then reads the feedback you got for it.

Feedback is five letters: c (correct), m (misplaced), w (wrong).
Enter "<guess> <pattern>" (e.g. "tares mwwcw"), or just the pattern to
use the suggested word. "?" lists the remaining candidates, "q" quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.corpus()
			if err != nil {
				return err
			}
			return runSolve(cmd.Context(), a.driver(c), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runSolve is the interactive loop. Bad lines are reported and re-prompted;
// they never change the session.
func runSolve(ctx context.Context, d *solver.Driver, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for !d.State().Terminal() {
		if d.Pending() == "" {
			best, err := d.Recommend(ctx)
			if errors.Is(err, solver.ErrExhausted) {
				break
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "suggest %s  (%.3f bits, p=%.4f, %d candidates)\n",
				best.Word, best.Entropy, best.Probability, d.Candidates().Len())
		}

		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "?":
			listCandidates(out, d.Candidates())
			continue
		}

		outcome, err := d.Submit(line)
		switch {
		case errors.Is(err, solver.ErrInvalidInput):
			fmt.Fprintf(out, "invalid input: %v\n", err)
			continue
		case errors.Is(err, solver.ErrInvalidFeedback):
			fmt.Fprintln(out, "no remaining word fits that feedback; check the guess and pattern and try again")
			continue
		case errors.Is(err, solver.ErrExhausted):
			// reported below
		case err != nil:
			return err
		}
		if !outcome.State.Terminal() {
			fmt.Fprintf(out, "%d candidates remain\n", outcome.Remaining)
		}
	}

	switch d.State() {
	case solver.StateSolved:
		fmt.Fprintf(out, "solved: %s (%d guesses reported)\n", d.Answer(), len(d.History()))
	case solver.StateExhausted:
		fmt.Fprintln(out, "no candidates left: the answer is not in the dictionary or earlier feedback was wrong")
	}
	return nil
}

func listCandidates(out io.Writer, set *solver.CandidateSet) {
	ws := set.Words()
	shown := ws
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	fmt.Fprintln(out, strings.Join(shown, " "))
	if len(ws) > len(shown) {
		fmt.Fprintf(out, "... and %d more\n", len(ws)-len(shown))
	}
}
