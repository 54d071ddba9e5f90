package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Handle applies a user event to the current state.
//
// An empty input is rejected in place: the presenter is told and the input
// is rendered again without storing an answer. An event that matches no
// pending action returns ErrNoAction.
func (e *Engine) Handle(ctx context.Context, event domain.Event) error {
	switch ev := event.(type) {
	case domain.InputSubmitted:
		return e.handleInput(ctx, ev)
	case domain.ButtonPressed:
		return e.handleButton(ctx, ev)
	default:
		return fmt.Errorf("%w: unsupported event %T", domain.ErrNoAction, event)
	}
}

func (e *Engine) handleInput(ctx context.Context, ev domain.InputSubmitted) error {
	action, ok := e.pendingInput()
	if !ok || (ev.Key != "" && ev.Key != action.Key) {
		return fmt.Errorf("%w: no input %q in state %q", domain.ErrNoAction, ev.Key, e.current.ID)
	}

	if strings.TrimSpace(ev.Raw) == "" {
		verr := &domain.ValidationError{State: e.current.ID, Key: action.Key}
		e.logger.Debug("input rejected", "state", e.current.ID, "key", action.Key)
		e.emitValidationError(ctx, verr)
		if err := e.presenter.RenderValidationError(ctx, verr); err != nil {
			return fmt.Errorf("failed to render validation error: %w", err)
		}
		return e.presenter.RenderInput(ctx, action.Request())
	}

	e.session.Answers.Set(action.Key, ev.Raw)
	if err := e.presenter.RenderMessage(ctx, domain.UserSay(ev.Raw)); err != nil {
		return fmt.Errorf("failed to echo input: %w", err)
	}
	return e.transition(ctx, action.Target)
}

func (e *Engine) handleButton(ctx context.Context, ev domain.ButtonPressed) error {
	action, ok := e.matchButton(ev)
	if !ok {
		if _, defined := e.flow.State(ev.Target); !defined {
			return e.unknownState(ctx, ev.Target)
		}
		return fmt.Errorf("%w: button %q in state %q", domain.ErrNoAction, ev.Label, e.current.ID)
	}

	pressed := action.Press()
	if pressed.Value != "" {
		e.session.Answers.Set(pressed.Key, pressed.Value)
	}
	if err := e.presenter.RenderMessage(ctx, domain.UserSay(pressed.Label)); err != nil {
		return fmt.Errorf("failed to echo choice: %w", err)
	}
	return e.transition(ctx, action.Target)
}

// matchButton finds the pending button for ev. The label disambiguates
// buttons sharing a target; an event without a label matches on target alone.
func (e *Engine) matchButton(ev domain.ButtonPressed) (domain.Action, bool) {
	for _, a := range e.pending {
		if a.Kind != domain.ActionButton || a.Target != ev.Target {
			continue
		}
		if ev.Label == "" || a.Label == ev.Label {
			return a, true
		}
	}
	return domain.Action{}, false
}

func (e *Engine) pendingInput() (domain.Action, bool) {
	for _, a := range e.pending {
		if a.Kind == domain.ActionInput {
			return a, true
		}
	}
	return domain.Action{}, false
}

// transition leaves the current state and enters target.
func (e *Engine) transition(ctx context.Context, target domain.StateID) error {
	def, ok := e.flow.State(target)
	if !ok {
		return e.unknownState(ctx, target)
	}
	e.emitStateLeave(ctx, e.current)
	return e.enter(ctx, def)
}

// unknownState reports a transition the flow cannot perform. The session is
// left untouched either way.
func (e *Engine) unknownState(ctx context.Context, target domain.StateID) error {
	err := fmt.Errorf("%w: %q from %q", domain.ErrUnknownState, target, e.current.ID)
	e.logger.Error("transition to unknown state", "from", e.current.ID, "target", target)
	e.emitError(ctx, err)
	if e.strict {
		return err
	}
	return nil
}
