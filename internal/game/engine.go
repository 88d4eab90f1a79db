// apps/go-solver/internal/game/engine.go
//
// Simulated game against a known secret.
// Responsibilities:
//   - Create games with a configurable round limit.
//   - Validate and apply guesses (length, alphabetic).
//   - Score guesses with Encode.
//   - Track state transitions: playing → won/lost.
//
// Used by the play and bench commands to drive the solver without a human
// reporting feedback.
package game

import "strings"

// DefaultRounds allows more than the usual six guesses so that simulated
// score distributions are not cut off.
const DefaultRounds = 32

// New constructs a new game instance for answer.
// A non-positive rounds uses DefaultRounds.
func New(answer string, rounds int) (*Game, error) {
	ans, err := NormalizeWord(answer)
	if err != nil {
		return nil, err
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &Game{
		Answer:  ans,
		Rounds:  rounds,
		Guesses: []string{},
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the pattern, the new state, or an error.
//
// State transitions:
//   - If the pattern is AllCorrect → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rounds → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Pattern, State, error) {
	if g.Finished {
		return 0, g.State(), ErrFinished
	}
	guess, err := NormalizeWord(guess)
	if err != nil {
		return 0, g.State(), err
	}

	p := Encode(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)

	if p == AllCorrect {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rounds {
		g.Finished = true
	}
	return p, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// String renders the guesses so far, one per line with their patterns.
func (g *Game) String() string {
	var b strings.Builder
	for _, guess := range g.Guesses {
		b.WriteString(guess)
		b.WriteByte(' ')
		b.WriteString(Encode(guess, g.Answer).String())
		b.WriteByte('\n')
	}
	return b.String()
}
