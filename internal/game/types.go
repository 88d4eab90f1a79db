// apps/go-solver/internal/game/types.go
//
// Core type definitions for feedback patterns and simulated games.
// Defines:
//   - Mark: per-letter result of a guess (correct/misplaced/wrong).
//   - Pattern: the five marks of one guess packed into a base-3 number.
//   - Game: state for a single simulated game against a known secret.

package game

import "errors"

// WordLen is the number of letters in every word the engine handles.
const WordLen = 5

// NumPatterns is the number of distinct feedback patterns (3^5).
const NumPatterns = 243

var (
	ErrInvalidWord    = errors.New("word must be 5 letters a-z")
	ErrInvalidPattern = errors.New("pattern must be 5 characters of c, m, w")
	ErrFinished       = errors.New("game finished")
)

// Mark represents the evaluation result for a single letter in a guess.
//   - MarkWrong:     letter does not occur in the unconsumed letters of the secret.
//   - MarkMisplaced: letter occurs in the secret at a different position.
//   - MarkCorrect:   letter is in the correct position.
type Mark uint8

const (
	MarkWrong Mark = iota
	MarkMisplaced
	MarkCorrect
)

// Byte returns the single-character form used on the command line.
func (m Mark) Byte() byte {
	switch m {
	case MarkCorrect:
		return 'c'
	case MarkMisplaced:
		return 'm'
	default:
		return 'w'
	}
}

// Pattern is a compact feedback value in [0, NumPatterns).
// Position 0 is the most significant base-3 digit.
type Pattern uint8

// AllCorrect is the pattern of a winning guess.
const AllCorrect Pattern = NumPatterns - 1

// State of a simulated game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single simulated game.
type Game struct {
	Answer   string   // The secret word (always lowercase).
	Rounds   int      // Maximum number of guesses allowed.
	Guesses  []string // Guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
