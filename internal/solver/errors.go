package solver

import "errors"

var (
	// ErrInvalidInput marks a malformed guess/pattern line. State is unchanged.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFeedback marks a well-formed pattern that no remaining candidate
	// could have produced. State is unchanged so the turn can be retried.
	ErrInvalidFeedback = errors.New("feedback inconsistent with every remaining candidate")
	// ErrExhausted is terminal: no candidates are left to recommend.
	ErrExhausted = errors.New("no candidates remain")
	// ErrSessionOver is returned for any call after a terminal state.
	ErrSessionOver = errors.New("session is over")
)
