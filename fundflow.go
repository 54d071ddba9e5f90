package fundflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fundflow/internal/runtime"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/interview"
	"github.com/aretw0/fundflow/pkg/ports"
)

// Engine is the high-level entry point for the fundflow library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	flow    *domain.Flow
	advisor ports.Advisor
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	strict  bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithFlow replaces the canonical interview with a custom flow.
func WithFlow(flow *domain.Flow) Option {
	return func(e *Engine) {
		e.flow = flow
	}
}

// WithAdvisor sets the advisor consulted by computation states.
// Without it every computation falls back to canned advice.
func WithAdvisor(a ports.Advisor) Option {
	return func(e *Engine) {
		e.advisor = a
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrict turns transitions to undefined states into errors.
// Meant for development, where such a transition is a flow bug.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an Engine that renders through presenter.
func New(presenter ports.Presenter, opts ...Option) (*Engine, error) {
	if presenter == nil {
		return nil, fmt.Errorf("presenter is required")
	}

	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.flow == nil {
		flow, err := interview.Flow()
		if err != nil {
			return nil, fmt.Errorf("failed to build interview: %w", err)
		}
		eng.flow = flow
	}

	// Ensure logger is initialized so the runtime and its default advisor share it.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(eng.flow, presenter,
		runtime.WithAdvisor(eng.advisor),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithStrict(eng.strict),
	)
	return eng, nil
}

// Start begins a new conversation. Calling it again restarts from scratch.
func (e *Engine) Start(ctx context.Context) error {
	return e.runtime.Start(ctx)
}

// Handle applies a button press or input submission.
func (e *Engine) Handle(ctx context.Context, event domain.Event) error {
	return e.runtime.Handle(ctx, event)
}

// Session returns the live conversation context.
func (e *Engine) Session() *domain.Session {
	return e.runtime.Session()
}

// Current returns the definition of the current state.
func (e *Engine) Current() domain.StateDef {
	return e.runtime.Current()
}

// Pending returns the actions currently offered.
func (e *Engine) Pending() []domain.Action {
	return e.runtime.Pending()
}

// Flow returns the flow the engine runs.
func (e *Engine) Flow() *domain.Flow {
	return e.flow
}
