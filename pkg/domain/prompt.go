package domain

// Prompt is a request for advisory text.
// Purpose lets the advisor pick a model and a fallback category.
type Prompt struct {
	Purpose Computation `json:"purpose"`
	Text    string      `json:"text"`
}
