package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the context of one conversation.
// It is created at conversation start, owned by a single engine and
// discarded entirely when the interview restarts.
type Session struct {
	ID        string
	Current   StateID
	Progress  int
	Answers   *Answers
	History   []StateID
	StartedAt time.Time
}

// NewSession creates a fresh session positioned before the start state.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Answers:   NewAnswers(),
		StartedAt: time.Now(),
	}
}

// Visit records entry into a state.
func (s *Session) Visit(id StateID, progress int) {
	s.Current = id
	s.Progress = progress
	s.History = append(s.History, id)
}

// Reset discards the conversation and begins a new one under a new ID.
func (s *Session) Reset() {
	s.ID = uuid.NewString()
	s.Current = ""
	s.Progress = 0
	s.Answers.Clear()
	s.History = nil
	s.StartedAt = time.Now()
}
