package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// Category is the kind of goal, derived from keywords in the goal text.
type Category string

const (
	CategoryStaffing  Category = "staffing"
	CategoryExpansion Category = "expansion"
	CategoryEquipment Category = "equipment"
	CategoryInventory Category = "inventory"
	CategoryGeneral   Category = "general"
)

type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules are checked in order; the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{CategoryStaffing, []string{"hire", "staff"}},
	{CategoryExpansion, []string{"expand", "branch", "location"}},
	{CategoryEquipment, []string{"equipment", "machinery"}},
	{CategoryInventory, []string{"inventory", "stock"}},
}

// Classify returns the category of goal. Matching is case-insensitive and
// substring based, so "hiring" counts as staffing and "expanding" as expansion.
func Classify(goal string) Category {
	g := strings.ToLower(goal)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(g, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// Categories returns every category in priority order, ending with CategoryGeneral.
func Categories() []Category {
	out := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.category)
	}
	return append(out, CategoryGeneral)
}

var firstInt = regexp.MustCompile(`\d+`)

// ExtractCount returns the first positive integer in text.
func ExtractCount(text string) (int, bool) {
	m := firstInt.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
