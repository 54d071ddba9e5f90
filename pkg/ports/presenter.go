package ports

import (
	"context"

	"github.com/aretw0/fundflow/pkg/domain"
)

// TransientHandle identifies a transient indicator so it can be removed.
type TransientHandle string

// Presenter renders what the engine emits. Implementations report user
// actions back by calling the engine with the domain.Event carried in a
// Choice or built from an InputRequest.
type Presenter interface {
	RenderMessage(ctx context.Context, msg domain.Message) error
	RenderChoices(ctx context.Context, choices []domain.Choice) error
	RenderInput(ctx context.Context, req domain.InputRequest) error
	RenderProgress(ctx context.Context, percent int) error
	// RenderValidationError marks the pending input as rejected without leaving the state.
	RenderValidationError(ctx context.Context, err *domain.ValidationError) error
	RenderTransient(ctx context.Context, text string) (TransientHandle, error)
	RemoveTransient(ctx context.Context, handle TransientHandle) error
}
