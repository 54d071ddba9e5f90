package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/fundflow/pkg/domain"
)

// enter makes def the current state and renders it. Entering the start
// state discards the conversation so far.
func (e *Engine) enter(ctx context.Context, def domain.StateDef) error {
	if def.ID == domain.StateStart {
		e.session.Reset()
	}
	e.session.Visit(def.ID, def.Progress)
	e.current = def
	e.pending = nil
	e.emitStateEnter(ctx, def)
	e.logger.Debug("state entered", "state", def.ID, "progress", def.Progress)

	if err := e.presenter.RenderProgress(ctx, def.Progress); err != nil {
		return fmt.Errorf("failed to render progress: %w", err)
	}
	for _, text := range def.Messages {
		if err := e.presenter.RenderMessage(ctx, domain.BotSay(text)); err != nil {
			return fmt.Errorf("failed to render message: %w", err)
		}
	}

	if def.IsComputation() {
		if err := e.compute(ctx, def); err != nil {
			return err
		}
		if def.Continue != "" {
			return e.transition(ctx, def.Continue)
		}
	}
	return e.renderActions(ctx, def)
}

// renderActions offers the state's buttons or its input.
func (e *Engine) renderActions(ctx context.Context, def domain.StateDef) error {
	e.pending = append([]domain.Action(nil), def.Actions...)

	if input, ok := def.InputAction(); ok {
		if err := e.presenter.RenderInput(ctx, input.Request()); err != nil {
			return fmt.Errorf("failed to render input: %w", err)
		}
	}

	buttons := def.Buttons()
	if len(buttons) == 0 {
		return nil
	}
	choices := make([]domain.Choice, 0, len(buttons))
	for _, b := range buttons {
		choices = append(choices, domain.Choice{Label: b.Label, Event: b.Press()})
	}
	if err := e.presenter.RenderChoices(ctx, choices); err != nil {
		return fmt.Errorf("failed to render choices: %w", err)
	}
	return nil
}
