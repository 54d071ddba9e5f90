package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when an action targets a state the flow does not define.
var ErrUnknownState = errors.New("unknown state")

// ErrEmptyInput is returned when a required input trims to empty.
var ErrEmptyInput = errors.New("input is empty")

// ErrInvalidFlow is returned when a flow definition fails validation.
var ErrInvalidFlow = errors.New("invalid flow")

// ErrNoAction is returned when an event does not match any action of the current state.
var ErrNoAction = errors.New("no matching action")

// ErrTransport is the root of every advisor transport failure.
var ErrTransport = errors.New("advisor transport failure")

// ValidationError reports an input rejected in place.
type ValidationError struct {
	State StateID
	Key   AnswerKey
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s in %s: %v", e.Key, e.State, ErrEmptyInput)
}

func (e *ValidationError) Unwrap() error {
	return ErrEmptyInput
}

// TransportError reports a failed advisor call.
// Status is the HTTP status when one was received, zero otherwise.
type TransportError struct {
	Provider string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ParseDegradation lists answer fields that fell back to their defaults.
type ParseDegradation struct {
	Fields []AnswerKey
}

func (e *ParseDegradation) Error() string {
	return fmt.Sprintf("defaults applied for %v", e.Fields)
}
