package domain

// Event is a user action reported by a presenter.
// The set is closed: only ButtonPressed and InputSubmitted implement it.
type Event interface {
	isEvent()
}

// ButtonPressed reports a selected button.
// Key and Value are set only for buttons that carry a fixed value.
type ButtonPressed struct {
	Target StateID   `json:"target"`
	Label  string    `json:"label,omitempty"`
	Key    AnswerKey `json:"key,omitempty"`
	Value  string    `json:"value,omitempty"`
}

// InputSubmitted reports raw text entered for an input.
type InputSubmitted struct {
	Key AnswerKey `json:"key"`
	Raw string    `json:"raw"`
}

func (ButtonPressed) isEvent()  {}
func (InputSubmitted) isEvent() {}
