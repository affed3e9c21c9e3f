package analytics

import (
	"sort"

	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/entity/money"
)

type BudgetStatus struct {
	CategoryID   string  `json:"categoryId"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Spent        float64 `json:"spent"`
	Budget       float64 `json:"budget"`
	Percentage   float64 `json:"percentage"`
	IsOverBudget bool    `json:"isOverBudget"`
}

// BudgetStatuses compares window spending with budgets for every category
// that has a positive budget. Most utilized categories come first.
func BudgetStatuses(cats []category.Category, budgets budget.Budgets, exps []expense.Expense) []BudgetStatus {
	spent := make(map[string]*money.Total)
	for _, exp := range exps {
		sum, ok := spent[exp.CategoryID]
		if !ok {
			sum = &money.Total{}
			spent[exp.CategoryID] = sum
		}
		sum.Add(exp.Amount)
	}

	res := make([]BudgetStatus, 0)
	for _, cat := range cats {
		limit, ok := budgets.Get(cat.ID)
		if !ok || limit <= 0 {
			continue
		}
		var amount float64
		if sum, ok := spent[cat.ID]; ok {
			amount = sum.Float64()
		}
		res = append(res, BudgetStatus{
			CategoryID:   cat.ID,
			Name:         cat.Name,
			Icon:         cat.Icon,
			Spent:        amount,
			Budget:       limit,
			Percentage:   amount / limit * 100,
			IsOverBudget: amount > limit,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Spent/res[i].Budget > res[j].Spent/res[j].Budget
	})
	return res
}
