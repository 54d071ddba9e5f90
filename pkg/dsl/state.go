package dsl

import "github.com/aretw0/fundflow/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	def domain.StateDef
}

// Say appends a static bot message shown on entry.
func (s *StateBuilder) Say(text string) *StateBuilder {
	s.def.Messages = append(s.def.Messages, text)
	return s
}

// Progress sets the completion percentage reported on entry.
func (s *StateBuilder) Progress(percent int) *StateBuilder {
	s.def.Progress = percent
	return s
}

// Button adds a navigation button.
func (s *StateBuilder) Button(label string, target domain.StateID) *StateBuilder {
	s.def.Actions = append(s.def.Actions, domain.Button(label, target))
	return s
}

// Choice adds a button that stores value under the default funding key.
func (s *StateBuilder) Choice(label, value string, target domain.StateID) *StateBuilder {
	s.def.Actions = append(s.def.Actions, domain.ValueButton(label, value, target))
	return s
}

// ChoiceFor adds a button that stores value under key.
func (s *StateBuilder) ChoiceFor(key domain.AnswerKey, label, value string, target domain.StateID) *StateBuilder {
	a := domain.ValueButton(label, value, target)
	a.Key = key
	s.def.Actions = append(s.def.Actions, a)
	return s
}

// Ask adds a free text input.
func (s *StateBuilder) Ask(key domain.AnswerKey, placeholder string, target domain.StateID) *StateBuilder {
	s.def.Actions = append(s.def.Actions, domain.TextInput(key, placeholder, target))
	return s
}

// AskNumber adds a numeric input.
func (s *StateBuilder) AskNumber(key domain.AnswerKey, placeholder string, target domain.StateID) *StateBuilder {
	s.def.Actions = append(s.def.Actions, domain.NumberInput(key, placeholder, target))
	return s
}

// Compute marks the state as a computation state.
// working is shown while the computation runs.
func (s *StateBuilder) Compute(c domain.Computation, working string) *StateBuilder {
	s.def.Compute = c
	s.def.Working = working
	return s
}

// Then sets the state entered once the computation completes.
func (s *StateBuilder) Then(next domain.StateID) *StateBuilder {
	s.def.Continue = next
	return s
}

// Def returns the underlying definition.
func (s *StateBuilder) Def() domain.StateDef {
	return s.def
}
