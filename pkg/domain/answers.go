package domain

import "maps"

// AnswerKey is the fixed identifier an answer is stored under.
type AnswerKey string

const (
	AnswerGoal     AnswerKey = "user_goal"
	AnswerTimeline AnswerKey = "user_timeline"
	AnswerCashflow AnswerKey = "user_cashflow"
	AnswerExpenses AnswerKey = "user_expenses"
	AnswerSavings  AnswerKey = "user_savings"
	AnswerFunding  AnswerKey = "user_funding"
	AnswerQuestion AnswerKey = "ai_question"
)

// Answers is the per-conversation store of raw answers.
// Values are kept exactly as entered; consumers parse them lazily.
type Answers struct {
	values map[AnswerKey]string
}

// NewAnswers creates an empty store.
func NewAnswers() *Answers {
	return &Answers{values: make(map[AnswerKey]string)}
}

// AnswersFrom creates a store pre-filled with values.
func AnswersFrom(values map[AnswerKey]string) *Answers {
	a := NewAnswers()
	maps.Copy(a.values, values)
	return a
}

// Set records the raw value for key, replacing any earlier answer.
func (a *Answers) Set(key AnswerKey, raw string) {
	a.values[key] = raw
}

// Lookup returns the raw value for key.
func (a *Answers) Lookup(key AnswerKey) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Get returns the raw value for key or an empty string.
func (a *Answers) Get(key AnswerKey) string {
	return a.values[key]
}

// Len returns the number of stored answers.
func (a *Answers) Len() int {
	return len(a.values)
}

// Snapshot returns a copy of all stored answers.
func (a *Answers) Snapshot() map[AnswerKey]string {
	return maps.Clone(a.values)
}

// Clear drops every answer.
func (a *Answers) Clear() {
	clear(a.values)
}
