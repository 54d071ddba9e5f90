package planner_test

import (
	"testing"

	"github.com/aretw0/fundflow/pkg/planner"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		goal string
		want planner.Category
	}{
		{"hire equipment for 3 staff", planner.CategoryStaffing},
		{"Hire 2 baristas", planner.CategoryStaffing},
		{"expand to a second city", planner.CategoryExpansion},
		{"open a new branch", planner.CategoryExpansion},
		{"new location with equipment", planner.CategoryExpansion},
		{"buy machinery", planner.CategoryEquipment},
		{"new equipment and stock", planner.CategoryEquipment},
		{"restock inventory", planner.CategoryInventory},
		{"build a website", planner.CategoryGeneral},
		{"", planner.CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.Classify(tt.goal))
		})
	}
}

func TestCategories_PriorityOrder(t *testing.T) {
	assert.Equal(t, []planner.Category{
		planner.CategoryStaffing,
		planner.CategoryExpansion,
		planner.CategoryEquipment,
		planner.CategoryInventory,
		planner.CategoryGeneral,
	}, planner.Categories())
}

func TestEstimateBudget(t *testing.T) {
	staffing := planner.EstimateBudget("hire equipment for 3 staff")
	assert.Equal(t, planner.CategoryStaffing, staffing.Category)
	assert.Equal(t, 3, staffing.Headcount)
	assert.True(t, planner.PerHeadCost.Mul(dec(3)).Equal(staffing.Amount))
	assert.True(t, dec(195000).Equal(staffing.Amount))

	noCount := planner.EstimateBudget("hire a chef")
	assert.Equal(t, planner.DefaultHeadcount, noCount.Headcount)
	assert.True(t, dec(130000).Equal(noCount.Amount))

	zero := planner.EstimateBudget("hire 0 staff")
	assert.Equal(t, planner.DefaultHeadcount, zero.Headcount)

	assert.True(t, dec(150000).Equal(planner.EstimateBudget("open a new branch").Amount))
	assert.True(t, dec(80000).Equal(planner.EstimateBudget("buy equipment").Amount))
	assert.True(t, dec(30000).Equal(planner.EstimateBudget("more stock for festive season").Amount))
	assert.True(t, dec(100000).Equal(planner.EstimateBudget("rebrand").Amount))
}

func TestExtractCount(t *testing.T) {
	n, ok := planner.ExtractCount("hire 12 people by March 2027")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = planner.ExtractCount("hire people")
	assert.False(t, ok)
}
