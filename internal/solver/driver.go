// apps/go-solver/internal/solver/driver.go
//
// Turn-based solver session.
// Responsibilities:
//   - Own the mutable CandidateSet for one game; the Corpus stays shared and immutable.
//   - Recommend the next guess (opening guess on turn one, otherwise the top of RankAll).
//   - Accept observed feedback, filter candidates, and track terminal states.
//
// State transitions:
//   Initializing → AwaitingGuess
//   AwaitingGuess --Recommend--> AwaitingFeedback
//   AwaitingGuess|AwaitingFeedback --Feedback--> Filtering → AwaitingGuess | Solved
//   AwaitingGuess --Recommend with no candidates--> Exhausted
//
// Rejected input (ErrInvalidInput, ErrInvalidFeedback) leaves the state and the
// candidate set exactly as they were.

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// State of a Driver.
type State int

const (
	StateInitializing State = iota
	StateAwaitingGuess
	StateAwaitingFeedback
	StateFiltering
	StateSolved
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateAwaitingFeedback:
		return "awaiting_feedback"
	case StateFiltering:
		return "filtering"
	case StateSolved:
		return "solved"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further turns are possible.
func (s State) Terminal() bool { return s == StateSolved || s == StateExhausted }

// GuessRecord is one (guess, observed pattern) pair of the session log.
type GuessRecord struct {
	Guess   string
	Pattern game.Pattern
}

// Outcome summarizes the session after a feedback step.
type Outcome struct {
	State     State
	Answer    string // set when State is StateSolved
	Remaining int
}

// Options configure a Driver.
type Options struct {
	// Scorer ranks guesses; nil uses NewScorer(PoolCandidates, StrategyWeighted, 0, Logger).
	Scorer *Scorer
	// OpeningGuess is used for the first recommendation when it is a corpus word.
	OpeningGuess string
	Logger       zerolog.Logger
}

// Driver runs one solving session over a shared Corpus.
type Driver struct {
	corpus     *Corpus
	candidates *CandidateSet
	scorer     *Scorer
	opening    string
	log        zerolog.Logger

	state   State
	history []GuessRecord
	pending string
	answer  string
}

// NewDriver starts a session with every corpus word as a candidate.
func NewDriver(corpus *Corpus, opts Options) *Driver {
	d := &Driver{
		corpus:  corpus,
		scorer:  opts.Scorer,
		opening: strings.ToLower(strings.TrimSpace(opts.OpeningGuess)),
		log:     opts.Logger,
		state:   StateInitializing,
	}
	if d.scorer == nil {
		d.scorer = NewScorer(PoolCandidates, StrategyWeighted, 0, opts.Logger)
	}
	d.candidates = NewCandidateSet(corpus)

	switch d.candidates.Len() {
	case 0:
		d.transition(StateExhausted)
	case 1:
		d.answer = d.candidates.Words()[0]
		d.transition(StateSolved)
	default:
		d.transition(StateAwaitingGuess)
	}
	return d
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Candidates returns the live candidate set.
func (d *Driver) Candidates() *CandidateSet { return d.candidates }

// Answer returns the solved word, or "" before StateSolved.
func (d *Driver) Answer() string { return d.answer }

// Pending returns the last recommended word not yet answered with feedback.
func (d *Driver) Pending() string { return d.pending }

// History returns a copy of the guess log.
func (d *Driver) History() []GuessRecord {
	return append([]GuessRecord(nil), d.history...)
}

// Recommend picks the next guess and moves to StateAwaitingFeedback.
func (d *Driver) Recommend(ctx context.Context) (Score, error) {
	if err := d.checkOpen(); err != nil {
		return Score{}, err
	}
	if d.candidates.Len() == 0 {
		d.transition(StateExhausted)
		return Score{}, ErrExhausted
	}

	var best Score
	if len(d.history) == 0 && d.opening != "" && d.corpus.Contains(d.opening) {
		best = d.scorer.Score(d.candidates, d.opening)
	} else {
		var err error
		best, err = d.scorer.Best(ctx, d.candidates)
		if errors.Is(err, ErrExhausted) {
			d.transition(StateExhausted)
			return Score{}, err
		}
		if err != nil {
			return Score{}, err
		}
	}

	d.pending = best.Word
	d.transition(StateAwaitingFeedback)
	d.log.Debug().
		Str("guess", best.Word).
		Float64("bits", best.Entropy).
		Float64("value", best.Value).
		Int("candidates", d.candidates.Len()).
		Msg("recommend")
	return best, nil
}

// Feedback applies an observed pattern for guess. The guess does not have to
// be the recommended word or a corpus word.
func (d *Driver) Feedback(guess string, observed game.Pattern) (Outcome, error) {
	if err := d.checkOpen(); err != nil {
		return d.outcome(), err
	}
	guess, err := game.NormalizeWord(guess)
	if err != nil {
		return d.outcome(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	prev := d.state
	d.transition(StateFiltering)

	if observed == game.AllCorrect {
		// A win needs no filtering; narrow to the guess when it is a candidate.
		if next, err := Filter(d.candidates, guess, observed); err == nil {
			d.candidates = next
		}
		d.record(guess, observed)
		d.answer = guess
		d.transition(StateSolved)
		return d.outcome(), nil
	}

	next, err := Filter(d.candidates, guess, observed)
	if err != nil {
		d.transition(prev)
		d.log.Warn().Err(err).Str("guess", guess).Str("pattern", observed.String()).Msg("feedback rejected")
		return d.outcome(), err
	}
	d.candidates = next
	d.record(guess, observed)

	switch d.candidates.Len() {
	case 0:
		d.transition(StateExhausted)
		return d.outcome(), ErrExhausted
	case 1:
		d.answer = d.candidates.Words()[0]
		d.transition(StateSolved)
	default:
		d.transition(StateAwaitingGuess)
	}
	return d.outcome(), nil
}

// Submit parses a "<guess> <pattern>" line and applies it. A line holding only
// a pattern applies to the pending recommendation.
func (d *Driver) Submit(line string) (Outcome, error) {
	if fields := strings.Fields(line); len(fields) == 1 && d.pending != "" {
		line = d.pending + " " + fields[0]
	}
	guess, p, err := ParseLine(line)
	if err != nil {
		return d.outcome(), err
	}
	return d.Feedback(guess, p)
}

// ParseLine splits a "<guess> <pattern>" line, e.g. "event mwwwc".
func ParseLine(line string) (string, game.Pattern, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: want \"<guess> <pattern>\", got %q", ErrInvalidInput, line)
	}
	guess, err := game.NormalizeWord(fields[0])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	p, err := game.ParsePattern(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return guess, p, nil
}

func (d *Driver) checkOpen() error {
	switch d.state {
	case StateExhausted:
		return fmt.Errorf("%w: %w", ErrSessionOver, ErrExhausted)
	case StateSolved:
		return ErrSessionOver
	}
	return nil
}

func (d *Driver) record(guess string, p game.Pattern) {
	d.history = append(d.history, GuessRecord{Guess: guess, Pattern: p})
	d.pending = ""
}

func (d *Driver) outcome() Outcome {
	return Outcome{State: d.state, Answer: d.answer, Remaining: d.candidates.Len()}
}

func (d *Driver) transition(to State) {
	from := d.state
	d.state = to
	ev := d.log.Debug()
	if to.Terminal() {
		ev = d.log.Info()
	}
	ev.Str("from", from.String()).
		Str("to", to.String()).
		Int("candidates", d.candidates.Len()).
		Str("answer", d.answer).
		Msg("transition")
}
