package planner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/shopspring/decimal"
)

// Funding is the preferred funding source for the goal.
type Funding string

const (
	FundingSelf     Funding = "self-funded"
	FundingLoan     Funding = "loan"
	FundingExternal Funding = "external"
)

// Defaults applied when an answer is missing or unparseable.
const (
	DefaultGoal           = "Business expansion"
	DefaultTimelineMonths = 12
	DefaultFunding        = FundingSelf
)

var (
	DefaultMonthlyRevenue = decimal.NewFromInt(50000)
	DefaultCurrentSavings = decimal.NewFromInt(10000)
	// DefaultExpenseRatio derives expenses from revenue when they are not given.
	DefaultExpenseRatio = decimal.NewFromFloat(0.8)
)

// Profile is the parsed view of the collected answers.
type Profile struct {
	Goal            string          `json:"goal"`
	TimelineMonths  int             `json:"timeline_months"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	CurrentSavings  decimal.Decimal `json:"current_savings"`
	Funding         Funding         `json:"funding"`
}

// AnswerSource is anything raw answers can be looked up from.
type AnswerSource interface {
	Lookup(key domain.AnswerKey) (string, bool)
}

// ComputeProfile parses answers, substituting defaults field by field.
// The result is degraded when any field needed a default; the cause is a
// *domain.ParseDegradation naming those fields.
func ComputeProfile(answers AnswerSource) domain.Result[Profile] {
	var defaulted []domain.AnswerKey
	fallback := func(key domain.AnswerKey) {
		defaulted = append(defaulted, key)
	}

	p := Profile{
		Goal:           DefaultGoal,
		TimelineMonths: DefaultTimelineMonths,
		MonthlyRevenue: DefaultMonthlyRevenue,
		CurrentSavings: DefaultCurrentSavings,
		Funding:        DefaultFunding,
	}

	if raw, ok := answers.Lookup(domain.AnswerGoal); ok && strings.TrimSpace(raw) != "" {
		p.Goal = strings.TrimSpace(raw)
	} else {
		fallback(domain.AnswerGoal)
	}

	if months, ok := parseMonths(lookup(answers, domain.AnswerTimeline)); ok {
		p.TimelineMonths = months
	} else {
		fallback(domain.AnswerTimeline)
	}

	if revenue, ok := parseRevenue(lookup(answers, domain.AnswerCashflow)); ok {
		p.MonthlyRevenue = revenue
	} else {
		fallback(domain.AnswerCashflow)
	}

	if expenses, ok := parseAmount(lookup(answers, domain.AnswerExpenses)); ok {
		p.MonthlyExpenses = expenses
	} else {
		p.MonthlyExpenses = p.MonthlyRevenue.Mul(DefaultExpenseRatio)
		fallback(domain.AnswerExpenses)
	}

	if savings, ok := parseAmount(lookup(answers, domain.AnswerSavings)); ok {
		p.CurrentSavings = savings
	} else {
		fallback(domain.AnswerSavings)
	}

	if funding, ok := ParseFunding(lookup(answers, domain.AnswerFunding)); ok {
		p.Funding = funding
	} else {
		fallback(domain.AnswerFunding)
	}

	if len(defaulted) > 0 {
		return domain.Degraded(p, &domain.ParseDegradation{Fields: defaulted})
	}
	return domain.Ok(p)
}

// ParseFunding normalizes a funding answer ("Business Loan", "loan", ...).
func ParseFunding(raw string) (Funding, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return DefaultFunding, false
	case strings.Contains(s, "loan"):
		return FundingLoan, true
	case strings.Contains(s, "external"), strings.Contains(s, "investor"):
		return FundingExternal, true
	case strings.Contains(s, "self"):
		return FundingSelf, true
	default:
		return DefaultFunding, false
	}
}

func lookup(answers AnswerSource, key domain.AnswerKey) string {
	v, _ := answers.Lookup(key)
	return v
}

var (
	leadingInt  = regexp.MustCompile(`^\d+`)
	grouped     = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d{1,2}(,\d{2})+,\d{3})(\.\d+)?$`)
	listSplit   = regexp.MustCompile(`;|,\s+`)
	currencyTok = strings.NewReplacer("₹", "", "$", "", "€", "", "£", "", "Rs.", "", "Rs", "", "INR", "", " ", "")
)

// parseMonths reads the leading integer ("6", "6 months").
func parseMonths(raw string) (int, bool) {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// parseAmount reads a single non-negative amount.
// Currency markers and digit grouping, both "150,000" and "1,50,000", are accepted.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := currencyTok.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, false
	}
	if grouped.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// parseRevenue accepts a single amount or a list of monthly figures and
// returns their arithmetic mean. "; " and ", " always separate entries.
// A bare comma separates entries unless the text is digit grouping, see
// groupedAmount. Entries led by a zero ("000") are grouping tails cut loose
// from their number, so a list holding one is rejected as a whole; other
// entries that do not parse are skipped.
func parseRevenue(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	switch {
	case listSplit.MatchString(s):
		return mean(listSplit.Split(s, -1))
	case strings.Contains(s, ",") && !groupedAmount(s):
		return mean(strings.Split(s, ","))
	default:
		return parseAmount(s)
	}
}

// groupedAmount reports whether a bare-comma text is one grouped number.
// Grouping is "150,000" or "1,50,000", except that three or more groups of
// three digits with no zero-led group ("100,200,300") read as a list.
func groupedAmount(s string) bool {
	c := currencyTok.Replace(s)
	if !grouped.MatchString(c) {
		return false
	}
	parts := strings.Split(c, ",")
	if len(parts) < 3 || len(parts[0]) != 3 {
		return true
	}
	for _, part := range parts {
		if zeroLed(part) {
			return true
		}
	}
	return false
}

func zeroLed(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

func mean(parts []string) (decimal.Decimal, bool) {
	var values []decimal.Decimal
	for _, part := range parts {
		part = currencyTok.Replace(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if zeroLed(part) {
			return decimal.Zero, false
		}
		if d, ok := parseAmount(part); ok {
			values = append(values, d)
		}
	}
	if len(values) == 0 {
		return decimal.Zero, false
	}
	return decimal.Avg(values[0], values[1:]...), true
}
