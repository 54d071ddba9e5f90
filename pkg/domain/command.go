package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandType selects how a Command is resolved.
type CommandType string

const (
	CommandButton CommandType = "button"
	CommandInput  CommandType = "input"
)

// Command is a serialized user action, as sent by structured clients.
// Buttons are picked by their 1-based position among the pending buttons.
type Command struct {
	Type  CommandType `json:"type"`
	Index int         `json:"index,omitempty"`
	Value string      `json:"value,omitempty"`
}

// Resolve turns c into the event for one of the pending actions.
func (c Command) Resolve(pending []Action) (Event, error) {
	switch c.Type {
	case CommandButton:
		buttons := buttonsOf(pending)
		if c.Index < 1 || c.Index > len(buttons) {
			return nil, fmt.Errorf("%w: button %d of %d", ErrNoAction, c.Index, len(buttons))
		}
		return buttons[c.Index-1].Press(), nil
	case CommandInput:
		for _, a := range pending {
			if a.Kind == ActionInput {
				return a.Submit(c.Value), nil
			}
		}
		return nil, fmt.Errorf("%w: no input pending", ErrNoAction)
	default:
		return nil, fmt.Errorf("%w: unknown command type %q", ErrNoAction, c.Type)
	}
}

// ParseCommand reads a line typed by a person. A number or a label
// (case-insensitive) picks a pending button; otherwise the whole line is
// submitted to the pending input.
func ParseCommand(pending []Action, line string) (Event, error) {
	text := strings.TrimSpace(line)
	buttons := buttonsOf(pending)

	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(buttons) {
		return buttons[n-1].Press(), nil
	}
	for _, b := range buttons {
		if strings.EqualFold(b.Label, text) {
			return b.Press(), nil
		}
	}
	for _, a := range pending {
		if a.Kind == ActionInput {
			return a.Submit(line), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoAction, text)
}

func buttonsOf(actions []Action) []Action {
	var out []Action
	for _, a := range actions {
		if a.Kind == ActionButton {
			out = append(out, a)
		}
	}
	return out
}
