package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

var testCategories = []category.Category{
	{ID: "c1", Name: "Food", Color: "#FF6384", Icon: "🍔"},
	{ID: "c2", Name: "Transport", Color: "#36A2EB", Icon: "🚗"},
	{ID: "c3", Name: "Fun", Color: "#4BC0C0", Icon: "🎬"},
}

func spend(categoryID string, amount float64, description string) expense.Expense {
	return expense.Expense{Amount: amount, Date: "2024-03-10", CategoryID: categoryID, Description: description}
}

func Test_OnByCategory_ShouldSumAndSortDescending(t *testing.T) {
	got := ByCategory([]expense.Expense{
		spend("c1", 0.1, ""),
		spend("c2", 5, ""),
		spend("c1", 0.2, ""),
		spend("gone", 1, ""),
		spend("c3", 5, ""),
	}, testCategories)

	require.Len(t, got, 4)
	assert.Equal(t, "c2", got[0].CategoryID)
	assert.Equal(t, "c3", got[1].CategoryID, "ties keep first seen order")
	assert.Equal(t, Unknown.ID, got[2].CategoryID)
	assert.Equal(t, "Unknown", got[2].Name)
	assert.Equal(t, "#888", got[2].Color)
	assert.Equal(t, "c1", got[3].CategoryID)
	assert.Equal(t, 0.3, got[3].Total)
}

func Test_OnByCategoryWithoutExpenses_ShouldReturnEmpty(t *testing.T) {
	assert.Empty(t, ByCategory(nil, testCategories))
}

func Test_OnByDescription_ShouldGroupIgnoringCase(t *testing.T) {
	got := ByDescription([]expense.Expense{
		spend("c1", 2, "Coffee"),
		spend("c1", 3, "coffee"),
		spend("c1", 1, ""),
		spend("c1", 4, "COFFEE"),
	}, 10)

	require.Len(t, got, 2)
	assert.Equal(t, DescriptionTotal{Description: "Coffee", Total: 9}, got[0])
	assert.Equal(t, DescriptionTotal{Description: NoDescription, Total: 1}, got[1])
}

func Test_OnByDescriptionWithTwelveGroups_ShouldFoldRemainderIntoOther(t *testing.T) {
	exps := make([]expense.Expense, 0, 12)
	for i := 1; i <= 12; i++ {
		exps = append(exps, spend("c1", float64(i), fmt.Sprintf("item %d", i)))
	}

	got := ByDescription(exps, 10)

	require.Len(t, got, 11)
	assert.Equal(t, "item 12", got[0].Description)
	assert.Equal(t, "item 3", got[9].Description)
	assert.Equal(t, DescriptionTotal{Description: OtherDescriptions, Total: 3}, got[10])
}

func Test_OnByDescription_ShouldBreakTiesByFirstSeen(t *testing.T) {
	got := ByDescription([]expense.Expense{
		spend("c1", 5, "b"),
		spend("c1", 5, "a"),
		spend("c1", 5, "c"),
		spend("c1", 1, "d"),
	}, 2)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Description)
	assert.Equal(t, "a", got[1].Description)
	assert.Equal(t, DescriptionTotal{Description: OtherDescriptions, Total: 6}, got[2])
}

func Test_OnByDescriptionWithNonPositiveTopN_ShouldUseDefault(t *testing.T) {
	exps := make([]expense.Expense, 0, 11)
	for i := 1; i <= 11; i++ {
		exps = append(exps, spend("c1", float64(i), fmt.Sprintf("item %d", i)))
	}

	got := ByDescription(exps, 0)

	require.Len(t, got, DefaultTopDescriptions+1)
	assert.Equal(t, DescriptionTotal{Description: OtherDescriptions, Total: 1}, got[DefaultTopDescriptions])
}

func Test_OnSum_ShouldAvoidFloatDrift(t *testing.T) {
	assert.Equal(t, 0.3, Sum([]expense.Expense{spend("c1", 0.1, ""), spend("c1", 0.2, "")}))
}
