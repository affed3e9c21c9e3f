package analytics

import (
	"fmt"
	"strings"

	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

const noExpensesText = "No expenses in this period"

func FormatReport(r Report) string {
	lines := []string{fmt.Sprintf("Spending for %s", r.Window.Label), ""}
	if r.Count == 0 {
		return strings.Join(append(lines, noExpensesText), "\n")
	}

	lines = append(lines, "By category:")
	for _, c := range r.Categories {
		lines = append(lines, fmt.Sprintf("%s %s: %.2f", c.Icon, c.Name, c.Total))
	}
	lines = append(lines, "", "By description:")
	for _, d := range r.Descriptions {
		lines = append(lines, fmt.Sprintf("%s: %.2f", d.Description, d.Total))
	}
	lines = append(lines, "", fmt.Sprintf("Total: %.2f (%d expenses)", r.Total, r.Count))
	return strings.Join(lines, "\n")
}

func FormatBudgets(r BudgetReport) string {
	lines := []string{fmt.Sprintf("Budgets for %s", r.Window.Label), ""}
	if len(r.Statuses) == 0 {
		return strings.Join(append(lines, "No budgets set"), "\n")
	}
	for _, s := range r.Statuses {
		mark := ""
		if s.IsOverBudget {
			mark = " ⚠️ over budget"
		}
		lines = append(lines, fmt.Sprintf("%s %s: %.2f / %.2f (%.0f%%)%s",
			s.Icon, s.Name, s.Spent, s.Budget, s.Percentage, mark))
	}
	return strings.Join(lines, "\n")
}

// FormatDashboard needs the categories to label recent expenses.
func FormatDashboard(stats DashboardStats, cats []category.Category) string {
	lines := []string{
		fmt.Sprintf("Month: %s", stats.Window.Label),
		fmt.Sprintf("Total spent: %.2f", stats.TotalSpent),
		fmt.Sprintf("Expenses: %d", stats.ExpenseCount),
		fmt.Sprintf("Top category: %s (%.2f)", stats.TopCategory.Name, stats.TopCategory.Amount),
		"",
		"Recent expenses:",
	}
	if len(stats.Recent) == 0 {
		lines = append(lines, "none yet")
	} else {
		lines = append(lines, FormatExpenses(stats.Recent, cats))
	}
	return strings.Join(lines, "\n")
}

// FormatExpenses renders one expense per line in the given order.
func FormatExpenses(exps []expense.Expense, cats []category.Category) string {
	byID := make(map[string]category.Category, len(cats))
	for _, cat := range cats {
		byID[cat.ID] = cat
	}

	lines := make([]string, 0, len(exps))
	for _, exp := range exps {
		cat, ok := byID[exp.CategoryID]
		if !ok {
			cat = Unknown
		}
		line := fmt.Sprintf("%s %s %s %.2f", exp.Date, cat.Icon, cat.Name, exp.Amount)
		if exp.Description != "" {
			line += " " + exp.Description
		}
		lines = append(lines, line+" ["+exp.ID+"]")
	}
	return strings.Join(lines, "\n")
}

func FormatCategories(cats []category.Category) string {
	lines := make([]string, 0, len(cats))
	for _, cat := range cats {
		line := fmt.Sprintf("%s %s %s", cat.Icon, cat.Name, cat.Color)
		if cat.IsDefault {
			line += " (default)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
