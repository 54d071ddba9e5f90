package planner_test

import (
	"testing"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/planner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func answers(kv map[domain.AnswerKey]string) *domain.Answers {
	return domain.AnswersFrom(kv)
}

func branchAnswers() *domain.Answers {
	return answers(map[domain.AnswerKey]string{
		domain.AnswerGoal:     "open a new branch",
		domain.AnswerTimeline: "6",
		domain.AnswerCashflow: "100000",
		domain.AnswerExpenses: "60000",
		domain.AnswerSavings:  "50000",
		domain.AnswerFunding:  "self-funded",
	})
}

func TestBuild_BranchExample(t *testing.T) {
	res := planner.Build(branchAnswers())
	require.False(t, res.Degraded(), "all fields were provided: %v", res.Cause())
	plan := res.Value()

	assert.Equal(t, planner.CategoryExpansion, plan.Budget.Category)
	assert.True(t, dec(150000).Equal(plan.Budget.Amount))
	assert.True(t, dec(40000).Equal(plan.NetCashFlow))
	assert.True(t, dec(28000).Equal(plan.MonthlySavingsCapacity))
	assert.True(t, dec(100000).Equal(plan.AdditionalNeeded))

	require.False(t, plan.MonthsToSave.Insufficient())
	assert.Equal(t, "3.57", plan.MonthsToSave.Months().StringFixed(2))
	assert.Equal(t, 4, plan.MonthsToSave.Whole())
	assert.Equal(t, "4 months", plan.MonthsToSave.String())
	assert.True(t, plan.Feasible)
	assert.Equal(t, "High", plan.Confidence())
	assert.Empty(t, plan.Alternatives)
	assert.Empty(t, plan.Advice.Funding, "self-funded plans carry no funding block")
}

func TestComputePlan_Deterministic(t *testing.T) {
	profile := planner.ComputeProfile(branchAnswers()).Value()
	estimate := planner.EstimateBudget(profile.Goal)

	first := planner.ComputePlan(profile, estimate)
	for range 5 {
		again := planner.ComputePlan(profile, estimate)
		assert.Equal(t, first, again)
		assert.Equal(t, first.Markdown(), again.Markdown())
	}
}

func TestComputePlan_InsufficientCashFlow(t *testing.T) {
	profile := planner.ComputeProfile(answers(map[domain.AnswerKey]string{
		domain.AnswerGoal:     "buy equipment",
		domain.AnswerTimeline: "12",
		domain.AnswerCashflow: "40000",
		domain.AnswerExpenses: "45000",
		domain.AnswerSavings:  "10000",
	})).Value()

	plan := planner.ComputePlan(profile, planner.EstimateBudget(profile.Goal))

	assert.True(t, plan.NetCashFlow.IsNegative())
	assert.False(t, plan.MonthlySavingsCapacity.IsPositive())
	assert.True(t, plan.MonthsToSave.Insufficient())
	assert.Equal(t, planner.InsufficientCashFlow, plan.MonthsToSave.String())
	assert.False(t, plan.Feasible)
	assert.Equal(t, "Medium", plan.Confidence())
	assert.Contains(t, plan.Markdown(), "Time to Save: Insufficient cash flow")
	assert.NotContains(t, plan.Markdown(), "Inf")
	assert.NotContains(t, plan.Markdown(), "NaN")

	var options []string
	for _, alt := range plan.Alternatives {
		options = append(options, alt.Option)
	}
	assert.Equal(t, []string{"Phased Implementation", "Equipment Leasing", "Strategic Partnership"}, options)
}

func TestComputePlan_ZeroCapacityIsInsufficient(t *testing.T) {
	profile := planner.Profile{
		Goal:            "hire 1 staff",
		TimelineMonths:  12,
		MonthlyRevenue:  dec(30000),
		MonthlyExpenses: dec(30000),
		CurrentSavings:  dec(500000),
		Funding:         planner.FundingSelf,
	}
	plan := planner.ComputePlan(profile, planner.EstimateBudget(profile.Goal))
	assert.True(t, plan.MonthsToSave.Insufficient())
	assert.False(t, plan.Feasible)
}

func TestComputePlan_AdditionalNeededNeverNegative(t *testing.T) {
	for _, savings := range []int64{0, 149999, 150000, 150001, 10_000_000} {
		profile := planner.Profile{
			Goal:            "expand",
			TimelineMonths:  6,
			MonthlyRevenue:  dec(100000),
			MonthlyExpenses: dec(60000),
			CurrentSavings:  dec(savings),
		}
		plan := planner.ComputePlan(profile, planner.EstimateBudget(profile.Goal))
		assert.False(t, plan.AdditionalNeeded.IsNegative(), "savings %d", savings)
	}

	rich := planner.ComputePlan(planner.Profile{
		Goal:            "expand",
		TimelineMonths:  1,
		MonthlyRevenue:  dec(1000),
		MonthlyExpenses: dec(500),
		CurrentSavings:  dec(1_000_000),
	}, planner.EstimateBudget("expand"))
	assert.True(t, rich.AdditionalNeeded.IsZero())
	assert.True(t, rich.Feasible)
	assert.Equal(t, "0 months", rich.MonthsToSave.String())
}

func TestComputePlan_FundingBlocks(t *testing.T) {
	base := planner.ComputeProfile(branchAnswers()).Value()

	loan := base
	loan.Funding = planner.FundingLoan
	loanPlan := planner.ComputePlan(loan, planner.EstimateBudget(loan.Goal))
	assert.NotEmpty(t, loanPlan.Advice.Funding)
	assert.True(t, dec(100000).Equal(loanPlan.LoanAmount()))
	assert.Contains(t, loanPlan.Markdown(), "LOAN CONSIDERATIONS")
	assert.Contains(t, loanPlan.Markdown(), "Consider loan amount: ₹100,000")

	external := base
	external.Funding = planner.FundingExternal
	extPlan := planner.ComputePlan(external, planner.EstimateBudget(external.Goal))
	assert.Contains(t, extPlan.Advice.Funding, "Develop investor pitch and business plan")
	assert.NotContains(t, extPlan.Markdown(), "LOAN CONSIDERATIONS")
}

func TestPlan_LoanAmountRoundsUp(t *testing.T) {
	plan := planner.Plan{AdditionalNeeded: dec(123456)}
	assert.True(t, dec(130000).Equal(plan.LoanAmount()))
}

func TestBuild_RestartedAnswersDoNotLeak(t *testing.T) {
	a := branchAnswers()
	first := planner.Build(a).Value()
	assert.True(t, dec(150000).Equal(first.Budget.Amount))

	a.Clear()
	a.Set(domain.AnswerGoal, "hire 3 staff")

	second := planner.Build(a).Value()
	assert.True(t, dec(195000).Equal(second.Budget.Amount))
	assert.Equal(t, planner.DefaultTimelineMonths, second.Profile.TimelineMonths)
	assert.True(t, planner.DefaultMonthlyRevenue.Equal(second.Profile.MonthlyRevenue))
	assert.True(t, planner.DefaultCurrentSavings.Equal(second.Profile.CurrentSavings))
}
