package advisor

import "strings"

// FallbackCategory selects the canned reply used when generation fails.
type FallbackCategory string

const (
	FallbackPlan           FallbackCategory = "plan"
	FallbackRecommendation FallbackCategory = "recommendation"
	FallbackGeneric        FallbackCategory = "generic"
)

const (
	fallbackPlanText = "Based on your business goal and financial data, I recommend creating a structured savings plan. " +
		"Focus on optimizing your cash flow and consider the timeline you've set. Would you like me to break down specific steps?"
	fallbackRecommendationText = "Here are some general recommendations: 1) Set up automatic savings transfers, " +
		"2) Review your expenses monthly, 3) Consider multiple funding options, 4) Track your progress regularly. " +
		"What specific area would you like me to focus on?"
	fallbackGenericText = "I understand your question about financial planning. While I'm having connectivity issues with the AI service, " +
		"I can still help you with basic financial planning principles. Could you rephrase your question?"
)

// ClassifyFallback inspects prompt keywords, case-insensitively.
// Plan keywords are checked before the recommendation keyword.
func ClassifyFallback(prompt string) FallbackCategory {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "financial plan"), strings.Contains(p, "business goal"):
		return FallbackPlan
	case strings.Contains(p, "recommendation"):
		return FallbackRecommendation
	default:
		return FallbackGeneric
	}
}

// FallbackText returns the canned reply for a category.
func FallbackText(c FallbackCategory) string {
	switch c {
	case FallbackPlan:
		return fallbackPlanText
	case FallbackRecommendation:
		return fallbackRecommendationText
	default:
		return fallbackGenericText
	}
}

// Fallback returns the canned reply for prompt.
func Fallback(prompt string) string {
	return FallbackText(ClassifyFallback(prompt))
}
