package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/fundflow/pkg/domain"
)

// LoggingHooks audits engine activity to logger. Transitions go to debug,
// degraded computations to warn and flow errors to error.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state entered", "session", e.SessionID, "state", e.StateID, "progress", e.Progress)
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state left", "session", e.SessionID, "state", e.StateID)
		},
		OnAdvisorCall: func(ctx context.Context, e *domain.AdvisorEvent) {
			logger.DebugContext(ctx, "advisor requested", "session", e.SessionID, "state", e.StateID, "prompt_len", len(e.Prompt))
		},
		OnAdvisorReturn: func(ctx context.Context, e *domain.AdvisorEvent) {
			level := slog.LevelInfo
			if e.Degraded {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "advisor returned", "session", e.SessionID, "state", e.StateID, "degraded", e.Degraded, "duration", e.Duration)
		},
		OnValidationError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.DebugContext(ctx, "input rejected", "session", e.SessionID, "state", e.StateID, "err", e.Err)
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.ErrorContext(ctx, "flow error", "session", e.SessionID, "state", e.StateID, "err", e.Err)
		},
	}
}
