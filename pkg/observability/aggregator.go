package observability

import (
	"context"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Combine merges hook sets into one. Each callback runs the non-nil
// callbacks of hooks in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range hooks {
		out.OnStateEnter = chain(out.OnStateEnter, h.OnStateEnter)
		out.OnStateLeave = chain(out.OnStateLeave, h.OnStateLeave)
		out.OnAdvisorCall = chain(out.OnAdvisorCall, h.OnAdvisorCall)
		out.OnAdvisorReturn = chain(out.OnAdvisorReturn, h.OnAdvisorReturn)
		out.OnValidationError = chain(out.OnValidationError, h.OnValidationError)
		out.OnError = chain(out.OnError, h.OnError)
	}
	return out
}

func chain[E any](first, next func(context.Context, E)) func(context.Context, E) {
	switch {
	case next == nil:
		return first
	case first == nil:
		return next
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		next(ctx, e)
	}
}
