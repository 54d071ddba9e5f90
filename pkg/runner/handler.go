package runner

import (
	"context"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	ports.Presenter

	// Input reads one line from the user. io.EOF ends the conversation.
	Input(ctx context.Context) (string, error)

	// Parse turns a line into an event for one of the pending actions.
	// It returns an error wrapping domain.ErrNoAction when nothing matches.
	Parse(pending []domain.Action, line string) (domain.Event, error)

	// SystemOutput presents a meta-message (rejected commands, restarts).
	// This is distinct from content rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// Engine is the part of the fundflow engine the runner drives.
type Engine interface {
	Start(ctx context.Context) error
	Handle(ctx context.Context, event domain.Event) error
	Pending() []domain.Action
}

// ContentRenderer renders Markdown for display.
type ContentRenderer func(markdown string) (string, error)
