package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
)

// RestartWord returns the conversation to the start state.
const RestartWord = "restart"

// Runner reads user lines and feeds them to the engine.
type Runner struct {
	Engine    Engine
	Handler   IOHandler
	Logger    *slog.Logger
	ExitWords []string
}

// NewRunner creates a runner for engine.
func NewRunner(engine Engine, opts ...Option) *Runner {
	r := &Runner{
		Engine:    engine,
		Logger:    slog.New(slog.DiscardHandler),
		ExitWords: []string{"quit", "exit"},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the conversation and processes input until the stream ends, an
// exit word is typed or ctx is canceled. End of input and exit words return nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.Engine == nil {
		return errors.New("runner: engine is required")
	}
	if r.Handler == nil {
		return errors.New("runner: input handler is required")
	}

	if err := r.Engine.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	for {
		line, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed")
				return nil
			}
			return err
		}

		word := strings.ToLower(strings.TrimSpace(line))
		switch {
		case slices.Contains(r.ExitWords, word):
			r.Logger.Debug("exit requested", "word", word)
			return nil
		case word == RestartWord:
			r.Logger.Info("restarting conversation")
			if err := r.Handler.SystemOutput(ctx, "Starting over."); err != nil {
				return err
			}
			if err := r.Engine.Start(ctx); err != nil {
				return fmt.Errorf("restart: %w", err)
			}
			continue
		}

		if err := r.step(ctx, line); err != nil {
			return err
		}
	}
}

// step handles one line. Lines that match no pending action are reported to
// the user and do not stop the loop.
func (r *Runner) step(ctx context.Context, line string) error {
	event, err := r.Handler.Parse(r.Engine.Pending(), line)
	if err == nil {
		err = r.Engine.Handle(ctx, event)
	}
	if errors.Is(err, domain.ErrNoAction) {
		r.Logger.Debug("unmatched input", "line", line, "err", err)
		return r.Handler.SystemOutput(ctx, "That is not one of the options. Pick a number or type an answer.")
	}
	if err != nil {
		return fmt.Errorf("handle: %w", err)
	}
	return nil
}
