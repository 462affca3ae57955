package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for malformed guesses. Nothing is mutated and
	// the caller may simply reprompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChoice is returned when the player picks neither letter nor word mode.
	ErrInvalidChoice = fmt.Errorf("%w: invalid selection", ErrInvalidInput)

	// ErrInvalidOperation is returned when a guess reaches a finished round.
	// It signals a bug in the caller.
	ErrInvalidOperation = errors.New("invalid operation")
)
