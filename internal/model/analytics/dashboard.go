package analytics

import (
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

const (
	DefaultRecentExpenses = 5

	noTopCategory = "N/A"
)

type TopCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type DashboardStats struct {
	Window       Window            `json:"window"`
	TotalSpent   float64           `json:"totalSpent"`
	ExpenseCount int               `json:"expenseCount"`
	TopCategory  TopCategory       `json:"topCategory"`
	Recent       []expense.Expense `json:"recent"`
}

// Dashboard summarizes the window and lists the latest expenses of all time.
func Dashboard(all []expense.Expense, cats []category.Category, w Window, recent int) DashboardStats {
	if recent <= 0 {
		recent = DefaultRecentExpenses
	}

	inWindow := FilterExpenses(all, w)
	stats := DashboardStats{
		Window:       w,
		TotalSpent:   Sum(inWindow),
		ExpenseCount: len(inWindow),
		TopCategory:  TopCategory{Name: noTopCategory},
	}

	if totals := ByCategory(inWindow, cats); len(totals) > 0 && totals[0].Total > 0 {
		stats.TopCategory = TopCategory{Name: totals[0].Name, Amount: totals[0].Total}
	}

	sorted := append([]expense.Expense(nil), all...)
	expense.SortByDateDesc(sorted)
	if len(sorted) > recent {
		sorted = sorted[:recent]
	}
	stats.Recent = sorted
	return stats
}
