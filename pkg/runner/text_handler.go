package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
	"github.com/muesli/termenv"
)

const progressWidth = 20

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	lines    *lineReader
	out      *termenv.Output
	Renderer ContentRenderer

	// interactive is set when the handler writes to a terminal.
	interactive bool

	mu         sync.Mutex
	transients map[ports.TransientHandle]bool
	seq        int
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithInteractive marks the handler as attached to a terminal.
func WithInteractive(interactive bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.interactive = interactive
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		lines:      newLineReader(r),
		out:        termenv.NewOutput(w),
		transients: make(map[ports.TransientHandle]bool),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) style(text, color string) termenv.Style {
	return h.out.String(text).Foreground(h.out.Color(color))
}

func (h *TextHandler) RenderMessage(_ context.Context, msg domain.Message) error {
	if msg.Author == domain.AuthorUser {
		if h.interactive {
			return nil
		}
		_, err := fmt.Fprintln(h.out, h.style("> "+msg.Text, "#9ca3af"))
		return err
	}

	text := msg.Text
	if msg.Markdown && h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			text = rendered
		}
	}
	_, err := fmt.Fprintln(h.out, strings.TrimSpace(text))
	return err
}

func (h *TextHandler) RenderChoices(_ context.Context, choices []domain.Choice) error {
	for i, c := range choices {
		idx := h.style(fmt.Sprintf("[%d]", i+1), "#10b981").Bold()
		if _, err := fmt.Fprintf(h.out, "  %s %s\n", idx, c.Label); err != nil {
			return err
		}
	}
	return nil
}

func (h *TextHandler) RenderInput(_ context.Context, req domain.InputRequest) error {
	_, err := fmt.Fprintln(h.out, h.style("  "+req.Placeholder, "#9ca3af").Italic())
	return err
}

func (h *TextHandler) RenderProgress(_ context.Context, percent int) error {
	_, err := fmt.Fprintln(h.out, h.style(progressBar(percent), "#14b8a6"))
	return err
}

func (h *TextHandler) RenderValidationError(_ context.Context, _ *domain.ValidationError) error {
	_, err := fmt.Fprintln(h.out, h.style("⚠ Please enter a response before continuing.", "#f59e0b"))
	return err
}

func (h *TextHandler) RenderTransient(_ context.Context, text string) (ports.TransientHandle, error) {
	h.mu.Lock()
	h.seq++
	handle := ports.TransientHandle(fmt.Sprintf("t%d", h.seq))
	h.transients[handle] = true
	h.mu.Unlock()

	_, err := fmt.Fprintln(h.out, h.style(text, "#9ca3af").Italic())
	return handle, err
}

func (h *TextHandler) RemoveTransient(_ context.Context, handle ports.TransientHandle) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.transients[handle] {
		return fmt.Errorf("unknown transient %q", handle)
	}
	delete(h.transients, handle)

	if h.interactive {
		h.out.CursorPrevLine(1)
		h.out.ClearLine()
	}
	return nil
}

// Input reads one sanitized line, prompting first on a terminal. Rejected lines are reported
// and the prompt is shown again.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		if h.interactive {
			fmt.Fprint(h.out, "> ")
		}
		line, err := h.lines.Next(ctx)
		if err != nil {
			return "", err
		}
		clean, err := CleanLine(line)
		if err != nil {
			fmt.Fprintf(h.out, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

func (h *TextHandler) Parse(pending []domain.Action, line string) (domain.Event, error) {
	return domain.ParseCommand(pending, line)
}

func (h *TextHandler) SystemOutput(_ context.Context, msg string) error {
	_, err := fmt.Fprintf(h.out, "\n[System] %s\n", msg)
	return err
}

func progressBar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * progressWidth / 100
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("█", filled), strings.Repeat("░", progressWidth-filled), percent)
}
