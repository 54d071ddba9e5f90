package dsl

import (
	"fmt"

	"github.com/aretw0/fundflow/pkg/domain"
)

// Builder manages the flow construction.
type Builder struct {
	order  []domain.StateID
	states map[domain.StateID]*StateBuilder
}

// New creates a new flow builder.
func New() *Builder {
	return &Builder{
		states: make(map[domain.StateID]*StateBuilder),
	}
}

// Add creates a new state in the flow.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(id domain.StateID) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		def: domain.StateDef{ID: id},
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build validates the definitions and returns the Flow.
func (b *Builder) Build() (*domain.Flow, error) {
	defs := make([]domain.StateDef, 0, len(b.order))
	for _, id := range b.order {
		defs = append(defs, b.states[id].def)
	}

	flow, err := domain.NewFlow(defs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build flow: %w", err)
	}
	return flow, nil
}

// MustBuild is like Build but panics on an invalid definition.
// It is meant for flows compiled into the binary.
func (b *Builder) MustBuild() *domain.Flow {
	flow, err := b.Build()
	if err != nil {
		panic(err)
	}
	return flow
}
