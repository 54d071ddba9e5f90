package planner

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Advice is the action-oriented guidance attached to a plan.
type Advice struct {
	Goal      []string `json:"goal"`
	CashFlow  []string `json:"cash_flow"`
	NextSteps []string `json:"next_steps"`
	// Funding is set only for loan and external funding.
	Funding []string `json:"funding,omitempty"`
	// Outlook depends on feasibility and is filled by ComputePlan.
	Outlook []string `json:"outlook,omitempty"`
}

var goalAdvice = map[Category][]string{
	CategoryStaffing: {
		"Calculate total hiring cost: salary + benefits + training + equipment",
		"Start recruitment process 2 months before target date",
		"Consider part-time or contract workers initially",
		"Budget for 3-6 months of salary as buffer",
	},
	CategoryExpansion: {
		"Research new location thoroughly (foot traffic, competition, rent)",
		"Negotiate flexible lease terms (shorter initial period)",
		"Plan for 6 months of operating expenses for new location",
		"Consider franchising or partnership models",
	},
	CategoryEquipment: {
		"Get quotes from multiple suppliers",
		"Consider leasing vs buying (cash flow impact)",
		"Look for end-of-year deals or bulk discounts",
		"Plan for installation, training, and maintenance costs",
	},
	CategoryInventory: {
		"Use sales history to stock fast-moving items first",
		"Negotiate bulk or seasonal discounts with suppliers",
		"Stagger purchases to protect working capital",
		"Set reorder points and review stock turnover monthly",
	},
	CategoryGeneral: {
		"Break down the goal into smaller, measurable milestones",
		"Research all associated costs (hidden costs often 20-30% more)",
		"Create contingency fund of 15-20% of total budget",
		"Set up progress tracking and review checkpoints",
	},
}

var nextSteps = []string{
	"Set up dedicated savings account",
	"Automate monthly transfers",
	"Track progress monthly",
	"Review and adjust quarterly",
}

var fundingAdvice = map[Funding][]string{
	FundingLoan: {
		"Prepare financial statements for loan application",
		"Compare interest rates and repayment terms across lenders",
		"Explore government schemes for business loans",
	},
	FundingExternal: {
		"Develop investor pitch and business plan",
		"Prepare a clear use-of-funds breakdown for investors",
		"Explore government schemes for business grants",
	},
}

// GoalAdvice returns the guidance bullets for a goal category.
func GoalAdvice(c Category) []string {
	if a, ok := goalAdvice[c]; ok {
		return slices.Clone(a)
	}
	return slices.Clone(goalAdvice[CategoryGeneral])
}

// BuildAdvice selects guidance for goal using the same classification as
// budget estimation. Funding blocks are added only for loan and external.
func BuildAdvice(goal string, funding Funding, netCashFlow decimal.Decimal) Advice {
	a := Advice{
		Goal:      GoalAdvice(Classify(goal)),
		NextSteps: slices.Clone(nextSteps),
		Funding:   slices.Clone(fundingAdvice[funding]),
	}

	if netCashFlow.IsPositive() {
		monthly := netCashFlow.Mul(SavingsRate).Floor()
		a.CashFlow = []string{
			"Set up automatic transfer of " + FormatMoney(monthly) + "/month to goal savings",
			"Review and cut unnecessary expenses by 10-15%",
		}
	} else {
		a.CashFlow = []string{
			"Expenses currently match or exceed revenue; stabilize cash flow before committing funds",
			"Review and cut unnecessary expenses by 10-15%",
			"Focus on increasing monthly revenue before major investment",
		}
	}
	return a
}

func outlook(feasible bool, funding Funding) []string {
	if feasible {
		return []string{
			"Your goal is achievable with current cash flow",
			"Review and optimize monthly expenses to increase savings rate",
			"Consider accelerating timeline if cash flow improves",
		}
	}
	out := []string{
		"Current timeline may be challenging with existing cash flow",
		"Consider extending timeline by 3-6 months",
	}
	if funding != FundingLoan {
		out = append(out, "Explore business loan options for faster implementation")
	}
	return out
}

// RevenueStrategy suggests how to grow revenue for the kind of business the goal mentions.
func RevenueStrategy(goal string) string {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "restaurant"), strings.Contains(g, "food"):
		return "menu optimization, delivery partnerships, catering services"
	case strings.Contains(g, "retail"), strings.Contains(g, "shop"):
		return "online sales, loyalty programs, seasonal promotions"
	case strings.Contains(g, "service"):
		return "premium service packages, referral programs, subscription models"
	default:
		return "new customer acquisition, upselling existing clients, digital marketing"
	}
}
