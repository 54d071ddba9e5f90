package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventStateEnter      EventType = "state_enter"
	EventStateLeave      EventType = "state_leave"
	EventAdvisorCall     EventType = "advisor_call"
	EventAdvisorReturn   EventType = "advisor_return"
	EventValidationError EventType = "validation_error"
	EventFlowError       EventType = "flow_error"
)

// EventBase contains common fields for all lifecycle events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// StateEvent represents entry into or exit from a state.
type StateEvent struct {
	EventBase
	StateID  StateID `json:"state_id"`
	Progress int     `json:"progress"`
}

// AdvisorEvent represents an advisor request and its outcome.
type AdvisorEvent struct {
	EventBase
	StateID  StateID       `json:"state_id"`
	Prompt   string        `json:"prompt,omitempty"`
	Degraded bool          `json:"degraded,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// ErrorEvent represents a recovered error (validation or flow).
type ErrorEvent struct {
	EventBase
	StateID StateID `json:"state_id"`
	Err     error   `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStateEnter      func(context.Context, *StateEvent)
	OnStateLeave      func(context.Context, *StateEvent)
	OnAdvisorCall     func(context.Context, *AdvisorEvent)
	OnAdvisorReturn   func(context.Context, *AdvisorEvent)
	OnValidationError func(context.Context, *ErrorEvent)
	OnError           func(context.Context, *ErrorEvent)
}
