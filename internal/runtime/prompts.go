package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/planner"
)

// PlanPrompt asks for a feasibility analysis of the profile.
func PlanPrompt(p planner.Profile) domain.Prompt {
	var b strings.Builder
	b.WriteString("As an expert financial advisor, analyze this business scenario and provide insights:\n")
	fmt.Fprintf(&b, "Business Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "Timeline: %d months\n", p.TimelineMonths)
	fmt.Fprintf(&b, "Monthly Revenue: %s\n", planner.FormatMoney(p.MonthlyRevenue))
	fmt.Fprintf(&b, "Monthly Expenses: %s\n", planner.FormatMoney(p.MonthlyExpenses))
	fmt.Fprintf(&b, "Current Savings: %s\n", planner.FormatMoney(p.CurrentSavings))
	fmt.Fprintf(&b, "Preferred Funding: %s\n\n", p.Funding)
	b.WriteString("Provide a financial plan with analysis on feasibility, risks, and key recommendations.")
	return domain.Prompt{Purpose: domain.ComputePlan, Text: b.String()}
}

// RecommendationsPrompt asks for actionable recommendations.
func RecommendationsPrompt(p planner.Profile) domain.Prompt {
	var b strings.Builder
	b.WriteString("Financial Advisory Request:\n")
	fmt.Fprintf(&b, "Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "Timeline: %d months\n", p.TimelineMonths)
	fmt.Fprintf(&b, "Monthly Revenue: %s\n", planner.FormatMoney(p.MonthlyRevenue))
	fmt.Fprintf(&b, "Monthly Expenses: %s\n", planner.FormatMoney(p.MonthlyExpenses))
	fmt.Fprintf(&b, "Current Savings: %s\n", planner.FormatMoney(p.CurrentSavings))
	fmt.Fprintf(&b, "Funding Preference: %s\n\n", p.Funding)
	b.WriteString("Please provide 5 specific, actionable recommendations for achieving this goal within the given timeline and budget constraints.")
	return domain.Prompt{Purpose: domain.ComputeRecommendations, Text: b.String()}
}

// QuestionPrompt frames a free-form question with the profile. The question
// comes last so a token budget cuts it before the context.
func QuestionPrompt(p planner.Profile, question string) domain.Prompt {
	text := fmt.Sprintf(
		"Context: The user's goal is %q with a timeline of %d months, monthly revenue of %s and monthly expenses of %s. "+
			"Provide helpful financial advice. Question: %s",
		strings.TrimSpace(p.Goal), p.TimelineMonths,
		planner.FormatMoney(p.MonthlyRevenue), planner.FormatMoney(p.MonthlyExpenses),
		strings.TrimSpace(question),
	)
	return domain.Prompt{Purpose: domain.ComputeAnswer, Text: text}
}
