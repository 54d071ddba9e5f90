package planner

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with digit grouping and at most two decimals.
func FormatMoney(d decimal.Decimal) string {
	v := d.Round(2).InexactFloat64()
	return CurrencySymbol + printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func bullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

// Markdown renders the plan as the structured chat message.
func (p Plan) Markdown() string {
	var b strings.Builder

	b.WriteString("📊 **STRUCTURED FINANCIAL PLAN**\n\n")
	fmt.Fprintf(&b, "🎯 **GOAL:** %s\n", p.Profile.Goal)
	fmt.Fprintf(&b, "⏰ **Timeline:** %s\n", plural(p.Profile.TimelineMonths, "month"))
	fmt.Fprintf(&b, "💰 **Estimated Budget:** %s\n", FormatMoney(p.Budget.Amount))
	fmt.Fprintf(&b, "🏦 **Current Savings:** %s\n", FormatMoney(p.Profile.CurrentSavings))
	fmt.Fprintf(&b, "📈 **Additional Needed:** %s\n\n", FormatMoney(p.AdditionalNeeded))

	b.WriteString("💵 **FINANCIAL CAPACITY**\n")
	fmt.Fprintf(&b, "• Monthly Net Cash Flow: %s\n", FormatMoney(p.NetCashFlow))
	fmt.Fprintf(&b, "• Monthly Savings Target: %s\n", FormatMoney(p.MonthlySavingsCapacity))
	fmt.Fprintf(&b, "• Time to Save: %s\n\n", p.MonthsToSave)

	if p.Feasible {
		b.WriteString("✅ **ACHIEVABLE**\n")
	} else {
		b.WriteString("⚠️ **CHALLENGING**\n")
	}
	fmt.Fprintf(&b, "Confidence Level: %s\n\n", p.Confidence())

	if len(p.Schedule.Entries) > 0 {
		b.WriteString("🗓️ **SAVINGS SCHEDULE**\n\n")
		b.WriteString("| Month | Saved So Far | Of Budget | Phase |\n")
		b.WriteString("| ---: | ---: | ---: | :--- |\n")
		for _, e := range p.Schedule.Entries {
			fmt.Fprintf(&b, "| %d | %s | %s%% | %s |\n", e.Month, FormatMoney(e.RunningTotal), e.PercentOfBudget.String(), e.Phase.Name)
		}
		if p.Schedule.Note != "" {
			fmt.Fprintf(&b, "\n%s\n", p.Schedule.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString("🎯 **NEXT STEPS:**\n")
	for i, step := range p.Advice.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")

	b.WriteString("💡 **GOAL ADVICE:**\n")
	bullets(&b, p.Advice.Goal)
	bullets(&b, p.Advice.CashFlow)
	bullets(&b, p.Advice.Outlook)

	if len(p.Risks) > 0 {
		b.WriteString("\n⚠️ **RISKS:**\n")
		bullets(&b, p.Risks)
	}

	switch p.Profile.Funding {
	case FundingLoan:
		b.WriteString("\n🏦 **LOAN CONSIDERATIONS:**\n")
		bullets(&b, p.Advice.Funding)
		fmt.Fprintf(&b, "• Consider loan amount: %s\n", FormatMoney(p.LoanAmount()))
	case FundingExternal:
		b.WriteString("\n👥 **EXTERNAL FUNDING:**\n")
		bullets(&b, p.Advice.Funding)
		fmt.Fprintf(&b, "• Target raise: %s\n", FormatMoney(p.AdditionalNeeded))
	}

	if len(p.Alternatives) > 0 {
		b.WriteString("\n🔄 **ALTERNATIVES:**\n")
		for _, alt := range p.Alternatives {
			fmt.Fprintf(&b, "• **%s** (budget -%s, %s): %s\n", alt.Option, alt.BudgetReduction, alt.TimelineImpact, alt.Description)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// Markdown renders the recommendations as the structured chat message.
func (r Recommendations) Markdown() string {
	var b strings.Builder

	b.WriteString("📋 **PERSONALIZED ACTION PLAN:**\n\n")
	b.WriteString("💰 **IMMEDIATE ACTIONS (Month 1-2):**\n")
	bullets(&b, r.Immediate)
	b.WriteString("\n📈 **GROWTH STRATEGIES (Month 3-6):**\n")
	bullets(&b, r.Growth)
	b.WriteString("\n🎯 **GOAL-SPECIFIC RECOMMENDATIONS:**\n")
	bullets(&b, r.GoalSpecific)
	b.WriteString("\n⚠️ **RISK MANAGEMENT:**\n")
	bullets(&b, r.RiskManagement)
	b.WriteString("\n📊 **MONTHLY TARGETS:**\n")
	bullets(&b, r.MonthlyTargets)

	return strings.TrimRight(b.String(), "\n")
}
