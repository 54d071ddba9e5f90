package planner_test

import (
	"strings"
	"testing"

	"github.com/aretw0/fundflow/pkg/planner"
	"github.com/stretchr/testify/assert"
)

func TestBuildAdvice_FollowsClassification(t *testing.T) {
	staffing := planner.BuildAdvice("hire equipment for 3 staff", planner.FundingSelf, dec(1000))
	assert.Equal(t, planner.GoalAdvice(planner.CategoryStaffing), staffing.Goal)

	branch := planner.BuildAdvice("open a new branch", planner.FundingSelf, dec(1000))
	assert.Equal(t, planner.GoalAdvice(planner.CategoryExpansion), branch.Goal)
	assert.Contains(t, branch.Goal[0], "Research new location")
}

func TestBuildAdvice_FundingBlocksOnlyForLoanAndExternal(t *testing.T) {
	assert.Empty(t, planner.BuildAdvice("x", planner.FundingSelf, dec(1)).Funding)
	assert.NotEmpty(t, planner.BuildAdvice("x", planner.FundingLoan, dec(1)).Funding)
	assert.NotEmpty(t, planner.BuildAdvice("x", planner.FundingExternal, dec(1)).Funding)
}

func TestBuildAdvice_CashFlow(t *testing.T) {
	positive := planner.BuildAdvice("x", planner.FundingSelf, dec(40000))
	assert.Equal(t, "Set up automatic transfer of ₹28,000/month to goal savings", positive.CashFlow[0])

	negative := planner.BuildAdvice("x", planner.FundingSelf, dec(-5000))
	assert.True(t, strings.HasPrefix(negative.CashFlow[0], "Expenses currently match or exceed revenue"))
}

func TestBuildAdvice_ResultsAreIndependent(t *testing.T) {
	first := planner.BuildAdvice("open a new branch", planner.FundingLoan, dec(1000))
	want := planner.BuildAdvice("open a new branch", planner.FundingLoan, dec(1000))
	first.Goal[0] = "edited"
	first.NextSteps[0] = "edited"
	first.Funding[0] = "edited"

	again := planner.BuildAdvice("open a new branch", planner.FundingLoan, dec(1000))
	assert.Equal(t, want, again)

	advice := planner.GoalAdvice(planner.CategoryEquipment)
	advice[0] = "edited"
	assert.NotEqual(t, "edited", planner.GoalAdvice(planner.CategoryEquipment)[0])
}

func TestRevenueStrategy(t *testing.T) {
	assert.Contains(t, planner.RevenueStrategy("Expand my Restaurant"), "menu optimization")
	assert.Contains(t, planner.RevenueStrategy("new retail counter"), "loyalty programs")
	assert.Contains(t, planner.RevenueStrategy("cleaning service"), "subscription models")
	assert.Contains(t, planner.RevenueStrategy("anything"), "digital marketing")
}

func TestAssessRisks(t *testing.T) {
	p := planner.Profile{
		Goal:            "open a new branch",
		TimelineMonths:  3,
		MonthlyRevenue:  dec(50000),
		MonthlyExpenses: dec(48000),
		CurrentSavings:  dec(1000),
	}
	risks := planner.AssessRisks(p, planner.CategoryExpansion)
	assert.Equal(t, []string{
		"Low cash flow buffer - vulnerable to unexpected expenses",
		"Aggressive timeline may require external funding",
		"Market entry risks in new locations",
		"Insufficient emergency fund",
	}, risks)

	healthy := planner.Profile{
		TimelineMonths:  12,
		MonthlyRevenue:  dec(100000),
		MonthlyExpenses: dec(20000),
		CurrentSavings:  dec(100000),
	}
	assert.Empty(t, planner.AssessRisks(healthy, planner.CategoryGeneral))
}

func TestBuildRecommendations(t *testing.T) {
	p := planner.ComputeProfile(branchAnswers()).Value()
	r := planner.BuildRecommendations(p)

	assert.True(t, dec(28000).Equal(r.MonthlySavings))
	assert.Equal(t, "40.0", r.SavingsRatePct.StringFixed(1))
	assert.Contains(t, r.RiskManagement[0], "₹180,000")

	md := r.Markdown()
	for _, heading := range []string{"IMMEDIATE ACTIONS", "GROWTH STRATEGIES", "GOAL-SPECIFIC RECOMMENDATIONS", "RISK MANAGEMENT", "MONTHLY TARGETS"} {
		assert.Contains(t, md, heading)
	}
	assert.Contains(t, md, "Current Savings Rate: 40.0% of revenue")
	assert.Contains(t, md, "Target: Achieve goal in 6 months")
}

func TestSavingsRatePercent_NonPositive(t *testing.T) {
	p := planner.Profile{MonthlyRevenue: dec(40000), MonthlyExpenses: dec(45000)}
	assert.True(t, planner.SavingsRatePercent(p).IsZero())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹150,000", planner.FormatMoney(dec(150000)))
	assert.Equal(t, "₹1,234.5", planner.FormatMoney(dec(12345).Shift(-1)))
}
