package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func Test_OnBudgetStatuses_ShouldSkipAbsentAndZeroBudgets(t *testing.T) {
	got := BudgetStatuses(testCategories, budget.Budgets{"c2": 0}, []expense.Expense{
		spend("c1", 50, ""),
		spend("c2", 10, ""),
	})

	assert.Empty(t, got)
}

func Test_OnBudgetStatuses_ShouldSortByUtilization(t *testing.T) {
	got := BudgetStatuses(testCategories, budget.Budgets{"c1": 100, "c2": 20, "c3": 40}, []expense.Expense{
		spend("c1", 50, ""),
		spend("c2", 30, ""),
		spend("other", 1000, ""),
	})

	require.Len(t, got, 3)

	assert.Equal(t, "c2", got[0].CategoryID)
	assert.Equal(t, 150.0, got[0].Percentage)
	assert.True(t, got[0].IsOverBudget)

	assert.Equal(t, "c1", got[1].CategoryID)
	assert.Equal(t, 50.0, got[1].Percentage)
	assert.False(t, got[1].IsOverBudget)

	assert.Equal(t, "c3", got[2].CategoryID)
	assert.Equal(t, 0.0, got[2].Spent)
	assert.Equal(t, 0.0, got[2].Percentage)
}

func Test_OnBudgetStatuses_ShouldIgnoreOrphanBudgets(t *testing.T) {
	got := BudgetStatuses(testCategories, budget.Budgets{"deleted": 10}, []expense.Expense{spend("deleted", 5, "")})

	assert.Empty(t, got)
}

func Test_OnBudgetStatusesAtExactBudget_ShouldNotBeOver(t *testing.T) {
	got := BudgetStatuses(testCategories, budget.Budgets{"c1": 0.3}, []expense.Expense{
		spend("c1", 0.1, ""),
		spend("c1", 0.2, ""),
	})

	require.Len(t, got, 1)
	assert.False(t, got[0].IsOverBudget)
	assert.Equal(t, 100.0, got[0].Percentage)
}
