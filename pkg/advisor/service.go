package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
)

// Models selects the model used per purpose.
type Models struct {
	// Chat answers free-form questions.
	Chat string `yaml:"chat" mapstructure:"chat"`
	// Plan analyzes plans and writes recommendations.
	Plan string `yaml:"plan" mapstructure:"plan"`
}

// For returns the model for a purpose.
func (m Models) For(purpose domain.Computation) string {
	switch purpose {
	case domain.ComputePlan, domain.ComputeRecommendations:
		if m.Plan != "" {
			return m.Plan
		}
	}
	return m.Chat
}

// Service is the best-effort advisor used by the engine.
// It implements ports.Advisor.
type Service struct {
	gen     Generator
	models  Models
	params  Params
	timeout time.Duration
	cache   ports.ResponseCache
	budget  *TokenBudget
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithModels sets the models used per purpose.
func WithModels(m Models) Option {
	return func(s *Service) { s.models = m }
}

// WithParams overrides DefaultParams.
func WithParams(p Params) Option {
	return func(s *Service) { s.params = p }
}

// WithTimeout bounds each generation call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithCache stores successful replies keyed by model and prompt.
func WithCache(c ports.ResponseCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithTokenBudget truncates prompts that exceed the budget.
func WithTokenBudget(b *TokenBudget) Option {
	return func(s *Service) { s.budget = b }
}

// WithMetrics records request outcomes.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger for transport diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// DefaultTimeout bounds each generation call unless WithTimeout overrides it.
const DefaultTimeout = 30 * time.Second

// New creates a Service around gen. A nil gen behaves like Offline.
func New(gen Generator, opts ...Option) *Service {
	if gen == nil {
		gen = Offline{}
	}
	s := &Service{
		gen:     gen,
		params:  DefaultParams,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provider returns the name of the wrapped generator.
func (s *Service) Provider() string {
	return s.gen.Name()
}

// Request runs Advise in the background. The channel yields one Result and is closed.
func (s *Service) Request(ctx context.Context, prompt domain.Prompt) <-chan domain.Result[string] {
	out := make(chan domain.Result[string], 1)
	go func() {
		defer close(out)
		out <- s.Advise(ctx, prompt)
	}()
	return out
}

// Advise returns advisory text for prompt. It never fails: on any error the
// Result is degraded and holds the fallback text for the prompt.
func (s *Service) Advise(ctx context.Context, prompt domain.Prompt) domain.Result[string] {
	start := time.Now()
	model := s.models.For(prompt.Purpose)
	text := prompt.Text
	if s.budget != nil {
		text = s.budget.Fit(text)
	}
	key := cacheKey(s.gen.Name(), model, text)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("advisor cache read failed", "err", err)
		} else if ok {
			s.metrics.observe(s.gen.Name(), prompt.Purpose, outcomeCached, time.Since(start))
			return domain.Ok(cached)
		}
	}

	reply, err := s.generate(ctx, model, text)
	if err != nil {
		category := ClassifyFallback(prompt.Text)
		s.logger.Warn("advisor request failed, using fallback",
			"provider", s.gen.Name(),
			"model", model,
			"purpose", prompt.Purpose.String(),
			"fallback", string(category),
			"err", err,
		)
		s.metrics.observe(s.gen.Name(), prompt.Purpose, outcomeFallback, time.Since(start))
		return domain.Degraded(FallbackText(category), err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, reply); err != nil {
			s.logger.Warn("advisor cache write failed", "err", err)
		}
	}
	s.metrics.observe(s.gen.Name(), prompt.Purpose, outcomeSuccess, time.Since(start))
	s.logger.Debug("advisor replied", "provider", s.gen.Name(), "model", model, "chars", len(reply))
	return domain.Ok(reply)
}

func (s *Service) generate(ctx context.Context, model, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.gen.Generate(ctx, Request{Model: model, Prompt: prompt, Params: s.params})
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", &domain.TransportError{Provider: s.gen.Name(), Err: ErrEmptyReply}
	}
	return reply, nil
}

func cacheKey(provider, model, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("%s:%s:%s", provider, model, hex.EncodeToString(sum[:]))
}
