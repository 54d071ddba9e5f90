package planner

import "github.com/shopspring/decimal"

// Cost table for budget estimation.
const DefaultHeadcount = 2

var (
	PerHeadCost   = decimal.NewFromInt(65000)
	ExpansionCost = decimal.NewFromInt(150000)
	EquipmentCost = decimal.NewFromInt(80000)
	InventoryCost = decimal.NewFromInt(30000)
	GeneralCost   = decimal.NewFromInt(100000)
)

// Estimate is the budget estimated for a goal.
type Estimate struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	// Headcount is set for staffing goals only.
	Headcount int `json:"headcount,omitempty"`
}

// EstimateBudget classifies goal and prices it from the cost table.
// Staffing goals cost PerHeadCost for each head named in the text, or
// DefaultHeadcount heads when no count is given.
func EstimateBudget(goal string) Estimate {
	cat := Classify(goal)
	switch cat {
	case CategoryStaffing:
		heads, ok := ExtractCount(goal)
		if !ok {
			heads = DefaultHeadcount
		}
		return Estimate{Category: cat, Amount: PerHeadCost.Mul(decimal.NewFromInt(int64(heads))), Headcount: heads}
	case CategoryExpansion:
		return Estimate{Category: cat, Amount: ExpansionCost}
	case CategoryEquipment:
		return Estimate{Category: cat, Amount: EquipmentCost}
	case CategoryInventory:
		return Estimate{Category: cat, Amount: InventoryCost}
	default:
		return Estimate{Category: CategoryGeneral, Amount: GeneralCost}
	}
}
