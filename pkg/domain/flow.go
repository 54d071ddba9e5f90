package domain

import (
	"fmt"
	"strings"
)

// Flow is a validated, immutable set of state definitions.
// Every member of the closed state set is defined and every action targets a
// defined state, so a transition to an unknown state cannot be constructed.
type Flow struct {
	defs map[StateID]StateDef
}

// NewFlow validates defs and returns a Flow.
func NewFlow(defs ...StateDef) (*Flow, error) {
	f := &Flow{defs: make(map[StateID]StateDef, len(defs))}
	for _, d := range defs {
		if _, dup := f.defs[d.ID]; dup {
			return nil, fmt.Errorf("%w: state %q defined twice", ErrInvalidFlow, d.ID)
		}
		f.defs[d.ID] = d
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// State returns the definition of id.
func (f *Flow) State(id StateID) (StateDef, bool) {
	d, ok := f.defs[id]
	return d, ok
}

// Start returns the initial state.
func (f *Flow) Start() StateDef {
	return f.defs[StateStart]
}

// States returns all definitions in canonical order.
func (f *Flow) States() []StateDef {
	out := make([]StateDef, 0, len(allStates))
	for _, id := range allStates {
		out = append(out, f.defs[id])
	}
	return out
}

func (f *Flow) validate() error {
	var problems []string
	for _, id := range allStates {
		if _, ok := f.defs[id]; !ok {
			problems = append(problems, fmt.Sprintf("state %q is not defined", id))
		}
	}

	for _, id := range allStates {
		d, ok := f.defs[id]
		if !ok {
			continue
		}
		problems = append(problems, f.checkState(d)...)
	}
	for id := range f.defs {
		if !id.Valid() {
			problems = append(problems, fmt.Sprintf("state %q is not a member of the state set", id))
		}
	}

	if len(problems) == 0 {
		problems = append(problems, f.checkReachable()...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidFlow, strings.Join(problems, "\n- "))
	}
	return nil
}

func (f *Flow) checkState(d StateDef) []string {
	var problems []string
	if d.Progress < 0 || d.Progress > 100 {
		problems = append(problems, fmt.Sprintf("state %q: progress %d out of range", d.ID, d.Progress))
	}

	inputs := 0
	for i, a := range d.Actions {
		if _, ok := f.defs[a.Target]; !ok {
			problems = append(problems, fmt.Sprintf("state %q: action %d targets unknown state %q", d.ID, i, a.Target))
		}
		switch a.Kind {
		case ActionInput:
			inputs++
			if a.Key == "" {
				problems = append(problems, fmt.Sprintf("state %q: input action %d has no key", d.ID, i))
			}
		case ActionButton:
			if a.Label == "" {
				problems = append(problems, fmt.Sprintf("state %q: button %d has no label", d.ID, i))
			}
		default:
			problems = append(problems, fmt.Sprintf("state %q: action %d has unknown kind %q", d.ID, i, a.Kind))
		}
	}
	if inputs > 1 {
		problems = append(problems, fmt.Sprintf("state %q: at most one input is allowed, found %d", d.ID, inputs))
	}

	if d.IsComputation() {
		if d.Working == "" {
			problems = append(problems, fmt.Sprintf("state %q: computation state needs a working indicator", d.ID))
		}
		if d.Continue != "" {
			if _, ok := f.defs[d.Continue]; !ok {
				problems = append(problems, fmt.Sprintf("state %q: continues at unknown state %q", d.ID, d.Continue))
			}
			if len(d.Actions) > 0 {
				problems = append(problems, fmt.Sprintf("state %q: computation state that continues elsewhere cannot declare actions", d.ID))
			}
		} else if len(d.Actions) == 0 {
			problems = append(problems, fmt.Sprintf("state %q: computation state renders nothing after computing", d.ID))
		}
	} else {
		if d.Continue != "" {
			problems = append(problems, fmt.Sprintf("state %q: only computation states may continue", d.ID))
		}
		if len(d.Actions) == 0 {
			problems = append(problems, fmt.Sprintf("state %q: has no actions", d.ID))
		}
	}
	return problems
}

// checkReachable walks the flow from the start state.
func (f *Flow) checkReachable() []string {
	visited := map[StateID]bool{}
	queue := []StateID{StateStart}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		d := f.defs[id]
		for _, a := range d.Actions {
			queue = append(queue, a.Target)
		}
		if d.Continue != "" {
			queue = append(queue, d.Continue)
		}
	}

	var problems []string
	for _, id := range allStates {
		if !visited[id] {
			problems = append(problems, fmt.Sprintf("state %q is unreachable from %q", id, StateStart))
		}
	}
	return problems
}
