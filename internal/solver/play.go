package solver

import (
	"context"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Play drives d against a simulated game until the game is finished.
// It returns the number of guesses used and whether the answer was found.
// If the driver settles on a word that turns out not to be the answer, the
// secret is missing from the corpus and Play stops with ErrExhausted.
func Play(ctx context.Context, d *Driver, g *game.Game) (int, bool, error) {
	for !g.Finished {
		var guess string
		solved := d.State() == StateSolved
		switch d.State() {
		case StateSolved:
			guess = d.Answer()
		case StateExhausted:
			return len(g.Guesses), false, nil
		default:
			best, err := d.Recommend(ctx)
			if err != nil {
				return len(g.Guesses), false, err
			}
			guess = best.Word
		}

		p, state, err := g.ApplyGuess(guess)
		if err != nil {
			return len(g.Guesses), false, fmt.Errorf("apply %q: %w", guess, err)
		}
		if state == game.StateWon {
			return len(g.Guesses), true, nil
		}
		if solved {
			return len(g.Guesses), false, fmt.Errorf("%w: %q was the last candidate but not the answer", ErrExhausted, guess)
		}
		if d.State().Terminal() {
			continue
		}
		if _, err := d.Feedback(guess, p); err != nil {
			return len(g.Guesses), false, err
		}
	}
	return len(g.Guesses), g.Won, nil
}
