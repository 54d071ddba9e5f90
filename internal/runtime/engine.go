package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
)

// Engine drives one conversation through a validated flow.
//
// The engine owns the session and is the only writer of its answers. It is
// not safe for concurrent use: callers deliver one event at a time, which the
// interview guarantees since no action is rendered while a computation runs.
type Engine struct {
	flow      *domain.Flow
	presenter ports.Presenter
	advisor   ports.Advisor
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	strict    bool

	session *domain.Session
	current domain.StateDef
	pending []domain.Action
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithAdvisor sets the advisor used by computation states.
func WithAdvisor(a ports.Advisor) EngineOption {
	return func(e *Engine) {
		if a != nil {
			e.advisor = a
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStrict makes Handle return ErrUnknownState for a transition to an
// undefined state instead of logging it and staying put.
func WithStrict(strict bool) EngineOption {
	return func(e *Engine) {
		e.strict = strict
	}
}

// NewEngine creates an engine for flow rendering through presenter.
// Without WithAdvisor every computation uses the offline fallback texts.
func NewEngine(flow *domain.Flow, presenter ports.Presenter, opts ...EngineOption) *Engine {
	e := &Engine{
		flow:      flow,
		presenter: presenter,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		session:   domain.NewSession(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.advisor == nil {
		e.advisor = advisor.New(nil, advisor.WithLogger(e.logger))
	}
	return e
}

// Start begins a new conversation at the start state.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.enter(ctx, e.flow.Start()); err != nil {
		return err
	}
	e.logger.Info("conversation started", "session_id", e.session.ID)
	return nil
}

// Session returns the live session.
func (e *Engine) Session() *domain.Session {
	return e.session
}

// Current returns the definition of the current state.
func (e *Engine) Current() domain.StateDef {
	return e.current
}

// Flow returns the flow the engine runs.
func (e *Engine) Flow() *domain.Flow {
	return e.flow
}

// Pending returns the actions currently offered to the user.
func (e *Engine) Pending() []domain.Action {
	return append([]domain.Action(nil), e.pending...)
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, SessionID: e.session.ID}
}

func (e *Engine) emitStateEnter(ctx context.Context, def domain.StateDef) {
	if e.hooks.OnStateEnter == nil {
		return
	}
	e.hooks.OnStateEnter(ctx, &domain.StateEvent{
		EventBase: e.base(domain.EventStateEnter),
		StateID:   def.ID,
		Progress:  def.Progress,
	})
}

func (e *Engine) emitStateLeave(ctx context.Context, def domain.StateDef) {
	if e.hooks.OnStateLeave == nil || def.ID == "" {
		return
	}
	e.hooks.OnStateLeave(ctx, &domain.StateEvent{
		EventBase: e.base(domain.EventStateLeave),
		StateID:   def.ID,
		Progress:  def.Progress,
	})
}

func (e *Engine) emitAdvisorCall(ctx context.Context, id domain.StateID, prompt domain.Prompt) {
	if e.hooks.OnAdvisorCall == nil {
		return
	}
	e.hooks.OnAdvisorCall(ctx, &domain.AdvisorEvent{
		EventBase: e.base(domain.EventAdvisorCall),
		StateID:   id,
		Prompt:    prompt.Text,
	})
}

func (e *Engine) emitAdvisorReturn(ctx context.Context, id domain.StateID, degraded bool, d time.Duration) {
	if e.hooks.OnAdvisorReturn == nil {
		return
	}
	e.hooks.OnAdvisorReturn(ctx, &domain.AdvisorEvent{
		EventBase: e.base(domain.EventAdvisorReturn),
		StateID:   id,
		Degraded:  degraded,
		Duration:  d,
	})
}

func (e *Engine) emitValidationError(ctx context.Context, err *domain.ValidationError) {
	if e.hooks.OnValidationError == nil {
		return
	}
	e.hooks.OnValidationError(ctx, &domain.ErrorEvent{
		EventBase: e.base(domain.EventValidationError),
		StateID:   err.State,
		Err:       err,
	})
}

func (e *Engine) emitError(ctx context.Context, err error) {
	if e.hooks.OnError == nil {
		return
	}
	e.hooks.OnError(ctx, &domain.ErrorEvent{
		EventBase: e.base(domain.EventFlowError),
		StateID:   e.current.ID,
		Err:       err,
	})
}
