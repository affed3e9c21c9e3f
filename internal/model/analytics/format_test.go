package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

func Test_OnFormatReport_ShouldListTotalsWithTwoDecimals(t *testing.T) {
	text := FormatReport(Report{
		Window:       Window{Label: "2024-05"},
		Total:        42.5,
		Count:        2,
		Categories:   []CategoryTotal{{Name: "Transport", Icon: "🚗", Total: 30}, {Name: "Food", Icon: "🍔", Total: 12.5}},
		Descriptions: []DescriptionTotal{{Description: "Taxi", Total: 30}, {Description: "Coffee", Total: 12.5}},
	})

	assert.Equal(t, "Spending for 2024-05\n\n"+
		"By category:\n🚗 Transport: 30.00\n🍔 Food: 12.50\n\n"+
		"By description:\nTaxi: 30.00\nCoffee: 12.50\n\n"+
		"Total: 42.50 (2 expenses)", text)
}

func Test_OnFormatEmptyReport_ShouldSayNoExpenses(t *testing.T) {
	text := FormatReport(Report{Window: Window{Label: "2024-05"}})

	assert.Equal(t, "Spending for 2024-05\n\nNo expenses in this period", text)
}

func Test_OnFormatBudgets_ShouldMarkOverBudget(t *testing.T) {
	text := FormatBudgets(BudgetReport{
		Window:   Window{Label: "2024-05"},
		Statuses: []BudgetStatus{{Name: "Food", Icon: "🍔", Spent: 12.5, Budget: 10, Percentage: 125, IsOverBudget: true}},
	})

	assert.Equal(t, "Budgets for 2024-05\n\n🍔 Food: 12.50 / 10.00 (125%) ⚠️ over budget", text)
}

func Test_OnFormatExpenses_ShouldLabelUnknownCategory(t *testing.T) {
	text := FormatExpenses([]expense.Expense{
		{ID: "e1", Amount: 3, Date: "2024-05-01", CategoryID: "gone"},
	}, testCategories)

	assert.Equal(t, "2024-05-01 ❓ Unknown 3.00 [e1]", text)
}
