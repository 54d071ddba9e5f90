package ports

import (
	"context"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Advisor produces advisory text for a prompt.
// The returned channel yields exactly one Result and is then closed. A failed
// call yields a degraded Result carrying fallback text, never an error.
type Advisor interface {
	Request(ctx context.Context, prompt domain.Prompt) <-chan domain.Result[string]
}

// ResponseCache stores advisor replies.
// Get reports a miss with ok=false and a nil error.
type ResponseCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
