package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScheduleEntries caps the number of months listed in a schedule.
const MaxScheduleEntries = 6

// Phase describes what a month of the timeline is for.
type Phase struct {
	Name    string   `json:"name"`
	Risk    string   `json:"risk"`
	Actions []string `json:"actions"`
}

var (
	phaseFoundation = Phase{
		Name:    "Foundation",
		Risk:    "Low",
		Actions: []string{"Set up dedicated savings account", "Optimize current expenses", "Research suppliers/vendors"},
	}
	phaseAccumulation = Phase{
		Name:    "Accumulation",
		Risk:    "Low",
		Actions: []string{"Continue aggressive saving", "Secure preliminary quotes", "Refine business plan"},
	}
	phasePreparation = Phase{
		Name:    "Preparation",
		Risk:    "Medium",
		Actions: []string{"Finalize vendor agreements", "Secure permits/licenses", "Prepare implementation timeline"},
	}
	phaseImplementation = Phase{
		Name:    "Implementation",
		Risk:    "High",
		Actions: []string{"Execute the plan", "Monitor cash flow closely", "Track ROI metrics"},
	}
)

// PhaseFor returns the phase of month within a timeline: the first quarter is
// Foundation, then Accumulation, Preparation and Implementation.
func PhaseFor(month, timeline int) Phase {
	switch {
	case month*4 <= timeline:
		return phaseFoundation
	case month*2 <= timeline:
		return phaseAccumulation
	case month*4 <= timeline*3:
		return phasePreparation
	default:
		return phaseImplementation
	}
}

// ScheduleEntry is one month of the savings schedule.
type ScheduleEntry struct {
	Month           int             `json:"month"`
	Deposit         decimal.Decimal `json:"deposit"`
	RunningTotal    decimal.Decimal `json:"running_total"`
	PercentOfBudget decimal.Decimal `json:"percent_of_budget"`
	Phase           Phase           `json:"phase"`
}

// Schedule lists the first months of saving towards the budget.
type Schedule struct {
	Entries []ScheduleEntry `json:"entries"`
	// Note summarizes the months beyond the listed ones. Empty when all fit.
	Note string `json:"note,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// BuildMonthlySchedule simulates monthly deposits starting from savings.
// Each month deposits the smaller of capacity and the even share of the
// remaining amount, so the budget is reached at the end of the timeline when
// capacity allows. At most MaxScheduleEntries months are listed.
func BuildMonthlySchedule(timeline int, capacity, savings, budget decimal.Decimal) Schedule {
	if timeline < 1 {
		timeline = 1
	}

	remaining := decimal.Max(decimal.Zero, budget.Sub(savings))
	deposit := decimal.Zero
	if capacity.IsPositive() {
		deposit = decimal.Min(capacity, remaining.Div(decimal.NewFromInt(int64(timeline))))
	}

	months := min(timeline, MaxScheduleEntries)
	entries := make([]ScheduleEntry, 0, months)
	total := savings
	for m := 1; m <= months; m++ {
		total = total.Add(deposit)
		entries = append(entries, ScheduleEntry{
			Month:           m,
			Deposit:         deposit.Round(2),
			RunningTotal:    total.Round(2),
			PercentOfBudget: percentOf(total, budget),
			Phase:           PhaseFor(m, timeline),
		})
	}

	s := Schedule{Entries: entries}
	if timeline > MaxScheduleEntries {
		projected := savings.Add(deposit.Mul(decimal.NewFromInt(int64(timeline))))
		s.Note = fmt.Sprintf("...%d more months at the same pace, reaching %s (%s%% of budget) by month %d",
			timeline-MaxScheduleEntries, FormatMoney(projected), percentOf(projected, budget).String(), timeline)
	}
	return s
}

// percentOf returns part as a percentage of whole, capped at 100 and rounded to one decimal.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return hundred
	}
	return decimal.Min(hundred, part.Div(whole).Mul(hundred)).Round(1)
}
