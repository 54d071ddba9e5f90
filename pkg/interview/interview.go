// Package interview defines the canonical financial planning interview.
package interview

import (
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/dsl"
)

// Funding preference values stored under domain.AnswerFunding.
const (
	FundingSelf     = "self-funded"
	FundingLoan     = "loan"
	FundingExternal = "external"
)

// Flow builds the canonical interview.
func Flow() (*domain.Flow, error) {
	return builder().Build()
}

// MustFlow is like Flow but panics if the definition is invalid.
func MustFlow() *domain.Flow {
	return builder().MustBuild()
}

func builder() *dsl.Builder {
	b := dsl.New()

	b.Add(domain.StateStart).
		Say("👋 Hi there! I'm your AI Financial Planner. Ready to build a personalized plan for your business goal?").
		Progress(10).
		Button("Yes, let's do it", domain.StateAskGoal)

	b.Add(domain.StateAskGoal).
		Say("Awesome! What is your business goal? (e.g., open a new branch, hire 2 staff, buy equipment)").
		Progress(25).
		Ask(domain.AnswerGoal, "Describe your business goal...", domain.StateAskTimeline)

	b.Add(domain.StateAskTimeline).
		Say("In how many months would you like to achieve this goal?").
		Progress(40).
		AskNumber(domain.AnswerTimeline, "Enter number of months", domain.StateAskCashflow)

	b.Add(domain.StateAskCashflow).
		Say("What is your average monthly revenue? (This helps estimate your cash flow)").
		Progress(55).
		AskNumber(domain.AnswerCashflow, "Enter monthly revenue (₹)", domain.StateAskExpenses)

	b.Add(domain.StateAskExpenses).
		Say("What are your average monthly business expenses?").
		Progress(70).
		AskNumber(domain.AnswerExpenses, "Enter monthly expenses (₹)", domain.StateAskSavings)

	b.Add(domain.StateAskSavings).
		Say("What is your current business savings amount?").
		Progress(85).
		AskNumber(domain.AnswerSavings, "Enter current savings (₹)", domain.StateAskFunding)

	b.Add(domain.StateAskFunding).
		Say("How would you prefer to fund this goal?").
		Progress(95).
		Choice("Self-funded", FundingSelf, domain.StatePlanning).
		Choice("Business Loan", FundingLoan, domain.StatePlanning).
		Choice("External Funding", FundingExternal, domain.StatePlanning)

	b.Add(domain.StatePlanning).
		Say("🤖 Connecting to AI Financial Advisor... Analyzing your data and creating a personalized plan...").
		Progress(100).
		Compute(domain.ComputePlan, "AI is analyzing your financial data...").
		Then(domain.StatePlanResult)

	b.Add(domain.StatePlanResult).
		Progress(100).
		Button("Get AI Recommendations", domain.StateRecommendations).
		Button("Ask AI Questions", domain.StateFollowUp).
		Button("Start Over", domain.StateStart)

	b.Add(domain.StateRecommendations).
		Say("🤖 Getting personalized AI recommendations...").
		Progress(100).
		Compute(domain.ComputeRecommendations, "AI is generating personalized recommendations...").
		Then(domain.StatePlanResult)

	b.Add(domain.StateFollowUp).
		Say("💬 Ask me anything about your financial plan! I can help with specific questions.").
		Progress(100).
		Ask(domain.AnswerQuestion, "Ask your financial question...", domain.StateAIResponse)

	b.Add(domain.StateAIResponse).
		Progress(100).
		Compute(domain.ComputeAnswer, "AI is thinking...").
		Button("Ask Another Question", domain.StateFollowUp).
		Button("Back to Plan", domain.StatePlanResult)

	return b
}
