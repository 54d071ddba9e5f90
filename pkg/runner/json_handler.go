package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
)

// FrameType tags each JSON line written by JSONHandler.
type FrameType string

const (
	FrameMessage         FrameType = "message"
	FrameChoices         FrameType = "choices"
	FrameInput           FrameType = "input"
	FrameProgress        FrameType = "progress"
	FrameValidationError FrameType = "validation_error"
	FrameTransient       FrameType = "transient"
	FrameRemoveTransient FrameType = "remove_transient"
	FrameSystem          FrameType = "system"
)

// Frame is one line of JSONHandler output.
type Frame struct {
	Type     FrameType             `json:"type"`
	Message  *domain.Message       `json:"message,omitempty"`
	Choices  []domain.Choice       `json:"choices,omitempty"`
	Input    *domain.InputRequest  `json:"input,omitempty"`
	Progress *int                  `json:"progress,omitempty"`
	Handle   ports.TransientHandle `json:"handle,omitempty"`
	Text     string                `json:"text,omitempty"`
	Key      domain.AnswerKey      `json:"key,omitempty"`
	State    domain.StateID        `json:"state,omitempty"`
}

// JSONHandler implements IOHandler for structured JSON-Lines communication.
// Input lines are either a domain.Command object or plain text, which is
// parsed the same way TextHandler parses it.
type JSONHandler struct {
	lines   *lineReader
	Encoder *json.Encoder

	mu  sync.Mutex
	seq int
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		lines:   newLineReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) emit(f Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(f)
}

func (h *JSONHandler) RenderMessage(_ context.Context, msg domain.Message) error {
	return h.emit(Frame{Type: FrameMessage, Message: &msg})
}

func (h *JSONHandler) RenderChoices(_ context.Context, choices []domain.Choice) error {
	return h.emit(Frame{Type: FrameChoices, Choices: choices})
}

func (h *JSONHandler) RenderInput(_ context.Context, req domain.InputRequest) error {
	return h.emit(Frame{Type: FrameInput, Input: &req})
}

func (h *JSONHandler) RenderProgress(_ context.Context, percent int) error {
	return h.emit(Frame{Type: FrameProgress, Progress: &percent})
}

func (h *JSONHandler) RenderValidationError(_ context.Context, err *domain.ValidationError) error {
	return h.emit(Frame{Type: FrameValidationError, Key: err.Key, State: err.State, Text: err.Error()})
}

func (h *JSONHandler) RenderTransient(_ context.Context, text string) (ports.TransientHandle, error) {
	h.mu.Lock()
	h.seq++
	handle := ports.TransientHandle(fmt.Sprintf("t%d", h.seq))
	h.mu.Unlock()
	return handle, h.emit(Frame{Type: FrameTransient, Handle: handle, Text: text})
}

func (h *JSONHandler) RemoveTransient(_ context.Context, handle ports.TransientHandle) error {
	return h.emit(Frame{Type: FrameRemoveTransient, Handle: handle})
}

// Input returns the next clean line. A rejected line is reported as a
// system frame and the next one is read.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		line, err := h.lines.Next(ctx)
		if err != nil {
			return "", err
		}
		clean, err := CleanLine(line)
		if err != nil {
			if err := h.SystemOutput(ctx, fmt.Sprintf("input rejected: %v", err)); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) Parse(pending []domain.Action, line string) (domain.Event, error) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		var cmd domain.Command
		if err := json.Unmarshal([]byte(trimmed), &cmd); err != nil {
			return nil, fmt.Errorf("%w: malformed command: %v", domain.ErrNoAction, err)
		}
		return cmd.Resolve(pending)
	}
	return domain.ParseCommand(pending, line)
}

func (h *JSONHandler) SystemOutput(_ context.Context, msg string) error {
	return h.emit(Frame{Type: FrameSystem, Text: msg})
}
