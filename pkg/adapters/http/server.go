package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/fundflow/internal/presentation/graph"
	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the part of the fundflow engine the server drives.
type Engine interface {
	Start(ctx context.Context) error
	Handle(ctx context.Context, event domain.Event) error
	Pending() []domain.Action
	Session() *domain.Session
	Flow() *domain.Flow
}

// Conversation is the JSON view of the conversation after a request.
type Conversation struct {
	SessionID  string               `json:"session_id"`
	State      domain.StateID       `json:"state"`
	Progress   int                  `json:"progress"`
	Messages   []domain.Message     `json:"messages"`
	Choices    []domain.Choice      `json:"choices,omitempty"`
	Input      *domain.InputRequest `json:"input,omitempty"`
	Validation *Validation          `json:"validation,omitempty"`
}

// Validation reports that the last submitted answer was rejected.
type Validation struct {
	State domain.StateID   `json:"state"`
	Key   domain.AnswerKey `json:"key"`
	Error string           `json:"error"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serializes HTTP requests onto one engine.
type Server struct {
	mu       sync.Mutex
	engine   Engine
	recorder *memory.Recorder
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer selects the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewServer creates a server for engine. recorder must be the presenter the
// engine was built with.
func NewServer(engine Engine, recorder *memory.Recorder, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		recorder: recorder,
		logger:   slog.New(slog.DiscardHandler),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a fresh conversation, discarding the current transcript.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restart(ctx)
}

func (s *Server) restart(ctx context.Context) error {
	s.recorder.Reset()
	return s.engine.Start(ctx)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/conversation", s.conversation)
		r.Post("/events", s.events)
		r.Post("/restart", s.restartHandler)
		r.Get("/graph", s.graph)
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) conversation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.view())
}

func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	var cmd domain.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		s.logger.Warn("invalid event body", "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.engine.Session().ID
	event, err := cmd.Resolve(s.engine.Pending())
	if err == nil {
		err = s.engine.Handle(r.Context(), event)
	}
	// A new session begins with the progress of the start state.
	if s.engine.Session().ID != session {
		s.recorder.DropBefore(memory.OpProgress)
	}
	switch {
	case errors.Is(err, domain.ErrNoAction):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		s.logger.Error("event failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.view())
}

func (s *Server) restartHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.restart(r.Context()); err != nil {
		s.logger.Error("restart failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.view())
}

func (s *Server) graph(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	sess := s.engine.Session()
	overlay := &graph.Overlay{
		Visited: append([]domain.StateID(nil), sess.History...),
		Current: sess.Current,
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(graph.GenerateMermaid(s.engine.Flow(), overlay)))
}

// view must be called with s.mu held.
func (s *Server) view() Conversation {
	sess := s.engine.Session()
	c := Conversation{
		SessionID: sess.ID,
		State:     sess.Current,
		Progress:  sess.Progress,
		Messages:  s.recorder.Messages(),
		Choices:   s.recorder.Choices(),
	}
	if c.Messages == nil {
		c.Messages = []domain.Message{}
	}
	if req, ok := s.recorder.Input(); ok {
		c.Input = &req
	}
	if verr := s.recorder.PendingValidation(); verr != nil {
		c.Validation = &Validation{State: verr.State, Key: verr.Key, Error: verr.Error()}
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
