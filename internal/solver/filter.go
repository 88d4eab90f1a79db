package solver

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Filter returns the members w of set for which Encode(guess, w) == observed.
// The input set is never modified. If no member survives, Filter returns
// ErrInvalidFeedback and a nil set.
func Filter(set *CandidateSet, guess string, observed game.Pattern) (*CandidateSet, error) {
	guess, err := game.NormalizeWord(guess)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if int(observed) >= game.NumPatterns {
		return nil, fmt.Errorf("%w: pattern %d out of range", ErrInvalidInput, observed)
	}

	kept := bitset.New(uint(set.corpus.Len()))
	set.each(func(i int) {
		if game.Encode(guess, set.corpus.Word(i)) == observed {
			kept.Set(uint(i))
		}
	})
	if kept.None() {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidFeedback, guess, observed)
	}
	return newCandidateSet(set.corpus, kept), nil
}
