package domain

import "slices"

// StateID identifies one step of the interview.
// Only the constants below are valid; a StateID built from any other string
// fails Valid and is rejected when a Flow is validated.
type StateID string

const (
	StateStart           StateID = "start"
	StateAskGoal         StateID = "ask_goal"
	StateAskTimeline     StateID = "ask_timeline"
	StateAskCashflow     StateID = "ask_cashflow"
	StateAskExpenses     StateID = "ask_expenses"
	StateAskSavings      StateID = "ask_savings"
	StateAskFunding      StateID = "ask_funding"
	StatePlanning        StateID = "ai_planner"
	StatePlanResult      StateID = "plan_result"
	StateRecommendations StateID = "ai_recommendations"
	StateFollowUp        StateID = "ai_chat"
	StateAIResponse      StateID = "ai_response"
)

// allStates lists every state in canonical order.
var allStates = []StateID{
	StateStart,
	StateAskGoal,
	StateAskTimeline,
	StateAskCashflow,
	StateAskExpenses,
	StateAskSavings,
	StateAskFunding,
	StatePlanning,
	StatePlanResult,
	StateRecommendations,
	StateFollowUp,
	StateAIResponse,
}

// States returns every state in canonical order.
func States() []StateID {
	return slices.Clone(allStates)
}

// Valid reports whether s is a member of the closed state set.
func (s StateID) Valid() bool {
	return slices.Contains(allStates, s)
}

func (s StateID) String() string {
	return string(s)
}

// Computation selects the work a computation state performs on entry.
type Computation int

const (
	// ComputeNone marks an ordinary state that renders its action set.
	ComputeNone Computation = iota
	// ComputePlan runs the planner and asks the advisor for a plan analysis.
	ComputePlan
	// ComputeRecommendations builds structured recommendations and asks the advisor for more.
	ComputeRecommendations
	// ComputeAnswer answers the free-form question stored under AnswerQuestion.
	ComputeAnswer
)

func (c Computation) String() string {
	switch c {
	case ComputePlan:
		return "plan"
	case ComputeRecommendations:
		return "recommendations"
	case ComputeAnswer:
		return "answer"
	default:
		return "none"
	}
}

// StateDef is the static definition of one interview step.
type StateDef struct {
	ID       StateID
	Messages []string
	Actions  []Action
	// Progress is the fixed completion percentage reported on entry (0-100).
	Progress int

	// Compute is non-zero for computation states.
	Compute Computation
	// Working is the transient indicator shown while a computation runs.
	Working string
	// Continue is entered once the computation finished.
	// Empty means the state renders its own Actions after computing.
	Continue StateID
}

// IsComputation reports whether entering the state triggers work instead of
// rendering its action set directly.
func (d StateDef) IsComputation() bool {
	return d.Compute != ComputeNone
}

// InputAction returns the state's input action, if any.
func (d StateDef) InputAction() (Action, bool) {
	for _, a := range d.Actions {
		if a.Kind == ActionInput {
			return a, true
		}
	}
	return Action{}, false
}

// Buttons returns the state's button actions in declaration order.
func (d StateDef) Buttons() []Action {
	var out []Action
	for _, a := range d.Actions {
		if a.Kind == ActionButton {
			out = append(out, a)
		}
	}
	return out
}
