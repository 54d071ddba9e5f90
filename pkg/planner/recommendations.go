package planner

import "github.com/shopspring/decimal"

// Recommendations is the structured action plan offered after the plan.
type Recommendations struct {
	Profile        Profile         `json:"profile"`
	Immediate      []string        `json:"immediate"`
	Growth         []string        `json:"growth"`
	GoalSpecific   []string        `json:"goal_specific"`
	RiskManagement []string        `json:"risk_management"`
	MonthlyTargets []string        `json:"monthly_targets"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	SavingsRatePct decimal.Decimal `json:"savings_rate_pct"`
}

// SavingsRatePercent is net cash flow as a share of revenue, rounded to one
// decimal. It is zero when net cash flow is not positive.
func SavingsRatePercent(p Profile) decimal.Decimal {
	net := p.MonthlyRevenue.Sub(p.MonthlyExpenses)
	if !net.IsPositive() || !p.MonthlyRevenue.IsPositive() {
		return decimal.Zero
	}
	return net.Div(p.MonthlyRevenue).Mul(hundred).Round(1)
}

// BuildRecommendations derives the structured action plan from the profile.
func BuildRecommendations(p Profile) Recommendations {
	net := p.MonthlyRevenue.Sub(p.MonthlyExpenses)
	monthly := decimal.Max(decimal.Zero, net.Mul(SavingsRate).Floor())
	rate := SavingsRatePercent(p)

	grants := "business grants"
	if p.Funding == FundingLoan {
		grants = "business loans"
	}

	return Recommendations{
		Profile:        p,
		MonthlySavings: monthly,
		SavingsRatePct: rate,
		Immediate: []string{
			"Set up automatic transfer of " + FormatMoney(monthly) + "/month to goal savings",
			"Review and cut unnecessary expenses by 10-15%",
			"Open a separate high-yield savings account for this goal",
			"Create monthly budget tracking system",
		},
		Growth: []string{
			"Increase revenue by 5-10% through " + RevenueStrategy(p.Goal),
			"Negotiate better rates with suppliers to reduce costs",
			"Consider pre-orders or advance payments from customers",
			"Explore government schemes for " + grants,
		},
		GoalSpecific: GoalAdvice(Classify(p.Goal)),
		RiskManagement: []string{
			"Maintain emergency fund of " + FormatMoney(EmergencyFund(p)) + " (3 months expenses)",
			"Get business insurance before major investments",
			"Start with pilot/small-scale implementation if possible",
			"Track ROI metrics from month 1",
		},
		MonthlyTargets: []string{
			"Save: " + FormatMoney(monthly) + "/month",
			"Current Savings Rate: " + rate.StringFixed(1) + "% of revenue",
			"Target: Achieve goal in " + plural(p.TimelineMonths, "month"),
			"Review progress every 30 days",
		},
	}
}
