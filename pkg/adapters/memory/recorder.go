package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/ports"
)

// OpKind names a presenter call.
type OpKind string

const (
	OpMessage         OpKind = "message"
	OpChoices         OpKind = "choices"
	OpInput           OpKind = "input"
	OpProgress        OpKind = "progress"
	OpValidationError OpKind = "validation_error"
	OpTransient       OpKind = "transient"
	OpRemoveTransient OpKind = "remove_transient"
)

// Op is one recorded presenter call. Only the fields matching Kind are set.
type Op struct {
	Kind       OpKind
	Message    domain.Message
	Choices    []domain.Choice
	Input      domain.InputRequest
	Progress   int
	Validation *domain.ValidationError
	Text       string
	Handle     ports.TransientHandle
}

var _ ports.Presenter = (*Recorder)(nil)

// Recorder implements ports.Presenter by recording every call in order.
// It also tracks the last rendered controls, which makes it usable as the
// state holder of a headless session.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	ops     []Op
	seq     int
	active  map[ports.TransientHandle]string
	choices []domain.Choice
	input   *domain.InputRequest
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{active: make(map[ports.TransientHandle]string)}
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *Recorder) RenderMessage(_ context.Context, msg domain.Message) error {
	r.record(Op{Kind: OpMessage, Message: msg})
	return nil
}

func (r *Recorder) RenderChoices(_ context.Context, choices []domain.Choice) error {
	r.mu.Lock()
	r.choices = append([]domain.Choice(nil), choices...)
	r.input = nil
	r.mu.Unlock()
	r.record(Op{Kind: OpChoices, Choices: choices})
	return nil
}

func (r *Recorder) RenderInput(_ context.Context, req domain.InputRequest) error {
	r.mu.Lock()
	r.input = &req
	r.choices = nil
	r.mu.Unlock()
	r.record(Op{Kind: OpInput, Input: req})
	return nil
}

func (r *Recorder) RenderProgress(_ context.Context, percent int) error {
	r.record(Op{Kind: OpProgress, Progress: percent})
	return nil
}

func (r *Recorder) RenderValidationError(_ context.Context, err *domain.ValidationError) error {
	r.record(Op{Kind: OpValidationError, Validation: err})
	return nil
}

func (r *Recorder) RenderTransient(_ context.Context, text string) (ports.TransientHandle, error) {
	r.mu.Lock()
	r.seq++
	h := ports.TransientHandle(fmt.Sprintf("t%d", r.seq))
	r.active[h] = text
	r.mu.Unlock()
	r.record(Op{Kind: OpTransient, Text: text, Handle: h})
	return h, nil
}

func (r *Recorder) RemoveTransient(_ context.Context, h ports.TransientHandle) error {
	r.mu.Lock()
	_, ok := r.active[h]
	delete(r.active, h)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown transient %q", h)
	}
	r.record(Op{Kind: OpRemoveTransient, Handle: h})
	return nil
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Op(nil), r.ops...)
}

// OpsOf returns the recorded calls of one kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Messages returns the rendered messages in order.
func (r *Recorder) Messages() []domain.Message {
	var out []domain.Message
	for _, op := range r.OpsOf(OpMessage) {
		out = append(out, op.Message)
	}
	return out
}

// LastProgress returns the most recent progress value, or -1 if none was rendered.
func (r *Recorder) LastProgress() int {
	ops := r.OpsOf(OpProgress)
	if len(ops) == 0 {
		return -1
	}
	return ops[len(ops)-1].Progress
}

// Choices returns the buttons currently on screen.
func (r *Recorder) Choices() []domain.Choice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Choice(nil), r.choices...)
}

// Input returns the pending input request, if any.
func (r *Recorder) Input() (domain.InputRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.input == nil {
		return domain.InputRequest{}, false
	}
	return *r.input, true
}

// PendingValidation returns the rejection of the latest submission, or nil
// once anything other than the re-rendered input followed it.
func (r *Recorder) PendingValidation() *domain.ValidationError {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.ops) - 1; i >= 0; i-- {
		switch r.ops[i].Kind {
		case OpInput:
			continue
		case OpValidationError:
			return r.ops[i].Validation
		default:
			return nil
		}
	}
	return nil
}

// ActiveTransients returns the number of indicators not yet removed.
func (r *Recorder) ActiveTransients() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}

// Reset clears recorded calls but keeps the current controls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
}

// DropBefore discards the calls recorded before the latest call of kind.
// Nothing is dropped when no such call exists.
func (r *Recorder) DropBefore(kind OpKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.ops[i].Kind == kind {
			r.ops = append([]Op(nil), r.ops[i:]...)
			return
		}
	}
}
