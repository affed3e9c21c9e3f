package analytics

import (
	"sort"
	"strings"

	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/entity/money"
)

const (
	DefaultTopDescriptions = 10

	NoDescription     = "(No Description)"
	OtherDescriptions = "Other Descriptions"
)

// Unknown collects expenses whose category no longer exists.
var Unknown = category.Category{
	ID:    "unknown",
	Name:  "Unknown",
	Color: "#888",
	Icon:  "❓",
}

type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Total      float64 `json:"total"`
}

type DescriptionTotal struct {
	Description string  `json:"description"`
	Total       float64 `json:"total"`
}

// ByCategory sums expenses per category, largest total first.
// Equal totals keep the order in which categories first appeared.
func ByCategory(exps []expense.Expense, cats []category.Category) []CategoryTotal {
	byID := make(map[string]category.Category, len(cats))
	for _, cat := range cats {
		byID[cat.ID] = cat
	}

	order := make([]category.Category, 0)
	sums := make(map[string]*money.Total)
	for _, exp := range exps {
		cat, ok := byID[exp.CategoryID]
		if !ok {
			cat = Unknown
		}
		sum, seen := sums[cat.ID]
		if !seen {
			sum = &money.Total{}
			sums[cat.ID] = sum
			order = append(order, cat)
		}
		sum.Add(exp.Amount)
	}

	res := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		res = append(res, CategoryTotal{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Icon:       cat.Icon,
			Total:      sums[cat.ID].Float64(),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Total > res[j].Total
	})
	return res
}

// ByDescription groups expenses by description ignoring case and keeps the
// topN largest groups. Everything past topN is folded into one
// OtherDescriptions entry, which is omitted when it sums to zero.
func ByDescription(exps []expense.Expense, topN int) []DescriptionTotal {
	if topN <= 0 {
		topN = DefaultTopDescriptions
	}

	type group struct {
		label string
		sum   money.Total
	}
	order := make([]*group, 0)
	groups := make(map[string]*group)
	for _, exp := range exps {
		label := exp.Description
		if label == "" {
			label = NoDescription
		}
		key := strings.ToLower(label)
		g, ok := groups[key]
		if !ok {
			g = &group{label: label}
			groups[key] = g
			order = append(order, g)
		}
		g.sum.Add(exp.Amount)
	}

	sorted := make([]DescriptionTotal, 0, len(order))
	for _, g := range order {
		sorted = append(sorted, DescriptionTotal{Description: g.label, Total: g.sum.Float64()})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})

	if len(sorted) <= topN {
		return sorted
	}

	res := sorted[:topN:topN]
	var other money.Total
	for _, d := range sorted[topN:] {
		other.Add(d.Total)
	}
	if rest := other.Float64(); rest > 0 {
		res = append(res, DescriptionTotal{Description: OtherDescriptions, Total: rest})
	}
	return res
}

// Sum adds up expense amounts.
func Sum(exps []expense.Expense) float64 {
	var total money.Total
	for _, exp := range exps {
		total.Add(exp.Amount)
	}
	return total.Float64()
}
