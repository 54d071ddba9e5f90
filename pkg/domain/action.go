package domain

// ActionKind distinguishes buttons from inputs.
type ActionKind string

const (
	ActionButton ActionKind = "button"
	ActionInput  ActionKind = "input"
)

// InputKind hints the presenter about the expected value.
type InputKind string

const (
	InputText   InputKind = "text"
	InputNumber InputKind = "number"
)

// DefaultPlaceholder is used when an input action declares none.
const DefaultPlaceholder = "Enter your response..."

// Action is one thing the user can do in a state.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Label  string     `json:"label,omitempty"`
	Target StateID    `json:"target"`

	// Key is where a button value or input text is stored.
	// Buttons carrying a Value without a Key store under AnswerFunding.
	Key   AnswerKey `json:"key,omitempty"`
	Value string    `json:"value,omitempty"`

	Placeholder string    `json:"placeholder,omitempty"`
	Input       InputKind `json:"input,omitempty"`
}

// Button creates a plain navigation button.
func Button(label string, target StateID) Action {
	return Action{Kind: ActionButton, Label: label, Target: target}
}

// ValueButton creates a button that stores value before navigating.
func ValueButton(label, value string, target StateID) Action {
	return Action{Kind: ActionButton, Label: label, Value: value, Target: target}
}

// TextInput creates a free text input.
func TextInput(key AnswerKey, placeholder string, target StateID) Action {
	return Action{Kind: ActionInput, Key: key, Placeholder: placeholder, Input: InputText, Target: target}
}

// NumberInput creates a numeric input.
func NumberInput(key AnswerKey, placeholder string, target StateID) Action {
	return Action{Kind: ActionInput, Key: key, Placeholder: placeholder, Input: InputNumber, Target: target}
}

// StoreKey returns the key a button value is written to.
func (a Action) StoreKey() AnswerKey {
	if a.Key != "" {
		return a.Key
	}
	return AnswerFunding
}

// Press builds the event a presenter reports when the button is selected.
func (a Action) Press() ButtonPressed {
	ev := ButtonPressed{Target: a.Target, Label: a.Label}
	if a.Value != "" {
		ev.Key = a.StoreKey()
		ev.Value = a.Value
	}
	return ev
}

// Submit builds the event a presenter reports when text is entered.
func (a Action) Submit(raw string) InputSubmitted {
	return InputSubmitted{Key: a.Key, Raw: raw}
}

// Choice is a selectable button as handed to a presenter.
type Choice struct {
	Label string        `json:"label"`
	Event ButtonPressed `json:"event"`
}

// InputRequest asks the presenter for a single value.
type InputRequest struct {
	Key         AnswerKey `json:"key"`
	Placeholder string    `json:"placeholder"`
	Kind        InputKind `json:"kind"`
}

// Request builds the presenter request for an input action.
func (a Action) Request() InputRequest {
	kind := a.Input
	if kind == "" {
		kind = InputText
	}
	placeholder := a.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return InputRequest{Key: a.Key, Placeholder: placeholder, Kind: kind}
}
