package planner

import (
	"fmt"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/shopspring/decimal"
)

// SavingsRate is the share of net cash flow assumed available for the goal.
var SavingsRate = decimal.NewFromFloat(0.7)

// InsufficientCashFlow is how a horizon without savings capacity is reported.
const InsufficientCashFlow = "Insufficient cash flow"

// Horizon is the time needed to save the additional amount.
// The zero value with insufficient set means savings capacity is not positive.
type Horizon struct {
	months       decimal.Decimal
	insufficient bool
}

// Insufficient reports whether the goal cannot be saved for at all.
func (h Horizon) Insufficient() bool {
	return h.insufficient
}

// Months returns the exact number of months. It is zero when Insufficient.
func (h Horizon) Months() decimal.Decimal {
	return h.months
}

// Whole returns the number of months rounded up.
func (h Horizon) Whole() int {
	return int(h.months.Ceil().IntPart())
}

func (h Horizon) String() string {
	if h.insufficient {
		return InsufficientCashFlow
	}
	return fmt.Sprintf("%d months", h.Whole())
}

// MarshalText renders the horizon as its rounded number of months or the marker.
func (h Horizon) MarshalText() ([]byte, error) {
	if h.insufficient {
		return []byte(InsufficientCashFlow), nil
	}
	return []byte(h.months.StringFixed(2)), nil
}

// Plan is the computed feasibility plan.
type Plan struct {
	Profile Profile  `json:"profile"`
	Budget  Estimate `json:"budget"`

	AdditionalNeeded       decimal.Decimal `json:"additional_needed"`
	NetCashFlow            decimal.Decimal `json:"net_cash_flow"`
	MonthlySavingsCapacity decimal.Decimal `json:"monthly_savings_capacity"`
	MonthsToSave           Horizon         `json:"months_to_save"`
	Feasible               bool            `json:"feasible"`

	Schedule     Schedule      `json:"schedule"`
	Advice       Advice        `json:"advice"`
	Risks        []string      `json:"risks,omitempty"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Confidence is "High" for feasible plans and "Medium" otherwise.
func (p Plan) Confidence() string {
	if p.Feasible {
		return "High"
	}
	return "Medium"
}

// LoanAmount is the additional amount rounded up to the next 10000.
func (p Plan) LoanAmount() decimal.Decimal {
	step := decimal.NewFromInt(10000)
	return p.AdditionalNeeded.Div(step).Ceil().Mul(step)
}

// ComputePlan derives the plan from profile and budget. It is a pure
// function: identical inputs always give identical plans.
func ComputePlan(profile Profile, budget Estimate) Plan {
	net := profile.MonthlyRevenue.Sub(profile.MonthlyExpenses)
	capacity := net.Mul(SavingsRate)
	additional := decimal.Max(decimal.Zero, budget.Amount.Sub(profile.CurrentSavings))

	var horizon Horizon
	if capacity.IsPositive() {
		horizon = Horizon{months: additional.Div(capacity)}
	} else {
		horizon = Horizon{insufficient: true}
	}
	feasible := !horizon.Insufficient() &&
		horizon.Months().LessThanOrEqual(decimal.NewFromInt(int64(profile.TimelineMonths)))

	plan := Plan{
		Profile:                profile,
		Budget:                 budget,
		AdditionalNeeded:       additional,
		NetCashFlow:            net,
		MonthlySavingsCapacity: capacity,
		MonthsToSave:           horizon,
		Feasible:               feasible,
		Schedule:               BuildMonthlySchedule(profile.TimelineMonths, capacity, profile.CurrentSavings, budget.Amount),
		Advice:                 BuildAdvice(profile.Goal, profile.Funding, net),
		Risks:                  AssessRisks(profile, budget.Category),
	}
	plan.Advice.Outlook = outlook(feasible, profile.Funding)
	if !feasible {
		plan.Alternatives = SuggestAlternatives(profile, budget.Category)
	}
	return plan
}

// Build runs the whole pipeline from raw answers. The result is degraded
// when the profile needed defaults; the plan itself is always complete.
func Build(answers AnswerSource) domain.Result[Plan] {
	profile := ComputeProfile(answers)
	plan := ComputePlan(profile.Value(), EstimateBudget(profile.Value().Goal))
	if profile.Degraded() {
		return domain.Degraded(plan, profile.Cause())
	}
	return domain.Ok(plan)
}
