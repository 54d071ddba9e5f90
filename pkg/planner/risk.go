package planner

import "github.com/shopspring/decimal"

// AssessRisks lists the risks visible in the profile.
func AssessRisks(p Profile, c Category) []string {
	var risks []string
	net := p.MonthlyRevenue.Sub(p.MonthlyExpenses)

	if net.LessThan(p.MonthlyExpenses.Mul(decimal.NewFromFloat(0.2))) {
		risks = append(risks, "Low cash flow buffer - vulnerable to unexpected expenses")
	}
	if p.TimelineMonths < 6 {
		risks = append(risks, "Aggressive timeline may require external funding")
	}
	if c == CategoryExpansion {
		risks = append(risks, "Market entry risks in new locations")
	}
	if p.CurrentSavings.LessThan(EmergencyFund(p)) {
		risks = append(risks, "Insufficient emergency fund")
	}
	return risks
}

// EmergencyFund is three months of expenses.
func EmergencyFund(p Profile) decimal.Decimal {
	return p.MonthlyExpenses.Mul(decimal.NewFromInt(3))
}

// Alternative is a different route to the goal, offered when the plan is not feasible.
type Alternative struct {
	Option          string   `json:"option"`
	Description     string   `json:"description"`
	BudgetReduction string   `json:"budget_reduction"`
	TimelineImpact  string   `json:"timeline_impact"`
	Benefits        []string `json:"benefits"`
}

// SuggestAlternatives returns alternative approaches for the goal.
func SuggestAlternatives(p Profile, c Category) []Alternative {
	alts := []Alternative{{
		Option:          "Phased Implementation",
		Description:     "Break down the " + p.Goal + " into smaller phases",
		BudgetReduction: "40-60%",
		TimelineImpact:  "Extends by 6-12 months",
		Benefits:        []string{"Lower initial investment", "Reduced risk", "Learn and adjust"},
	}}
	if c == CategoryEquipment {
		alts = append(alts, Alternative{
			Option:          "Equipment Leasing",
			Description:     "Lease equipment instead of purchasing",
			BudgetReduction: "70-80%",
			TimelineImpact:  "Can start immediately",
			Benefits:        []string{"Lower upfront cost", "Maintenance included", "Tax benefits"},
		})
	}
	alts = append(alts, Alternative{
		Option:          "Strategic Partnership",
		Description:     "Partner with another business to share costs",
		BudgetReduction: "30-50%",
		TimelineImpact:  "May accelerate timeline",
		Benefits:        []string{"Shared risk", "Combined expertise", "Faster market entry"},
	})
	return alts
}
