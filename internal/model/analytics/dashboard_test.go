package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func Test_OnDashboard_ShouldSummarizeMostRecentMonth(t *testing.T) {
	exps := []expense.Expense{
		{ID: "e1", Amount: 10, Date: "2024-02-20", CategoryID: "c1"},
		{ID: "e2", Amount: 4, Date: "2024-03-02", CategoryID: "c1"},
		{ID: "e3", Amount: 6, Date: "2024-03-05", CategoryID: "c2"},
		{ID: "e4", Amount: 1, Date: "2024-03-09", CategoryID: "c1"},
		{ID: "e5", Amount: 2, Date: "broken", CategoryID: "c1"},
		{ID: "e6", Amount: 3, Date: "2024-01-01", CategoryID: "c3"},
		{ID: "e7", Amount: 3, Date: "2024-01-02", CategoryID: "c3"},
	}
	w := NewResolver(nil).MostRecentMonth(exps)

	stats := Dashboard(exps, testCategories, w, 0)

	assert.Equal(t, "2024-03", stats.Window.Label)
	assert.Equal(t, 11.0, stats.TotalSpent)
	assert.Equal(t, 3, stats.ExpenseCount)
	assert.Equal(t, TopCategory{Name: "Transport", Amount: 6}, stats.TopCategory)

	require.Len(t, stats.Recent, DefaultRecentExpenses)
	ids := make([]string, 0, len(stats.Recent))
	for _, exp := range stats.Recent {
		ids = append(ids, exp.ID)
	}
	assert.Equal(t, []string{"e4", "e3", "e2", "e1", "e7"}, ids)
}

func Test_OnDashboardWithoutExpenses_ShouldReportNoTopCategory(t *testing.T) {
	w := NewResolver(fixedClock(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))).MostRecentMonth(nil)

	stats := Dashboard(nil, testCategories, w, 5)

	assert.Equal(t, "2024-06", stats.Window.Label)
	assert.Equal(t, TopCategory{Name: "N/A"}, stats.TopCategory)
	assert.Equal(t, 0, stats.ExpenseCount)
	assert.Empty(t, stats.Recent)
}

func Test_OnDashboard_ShouldNotReorderInput(t *testing.T) {
	exps := datedExpenses("2024-01-01", "2024-03-01")

	Dashboard(exps, testCategories, NewResolver(nil).MostRecentMonth(exps), 5)

	assert.Equal(t, "2024-01-01", exps[0].Date)
}
