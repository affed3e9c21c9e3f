package ledger

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

func Test_OnGetBudgets_ShouldReturnEmptyMapWhenNoneStored(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	budgets, err := l.GetBudgets(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, budgets)
	assert.Empty(t, budgets)
}

func Test_OnSetBudget_ShouldUpsert(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())

	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "100"))
	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "0"))

	amount, ok, err := l.GetBudgetForCategory(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.0, amount)

	_, ok, err = l.GetBudgetForCategory(ctx, "c2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnSetInvalidBudget_ShouldNotMutate(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "100"))

	for _, raw := range []string{"-1", "abc", "", "1e999"} {
		err := l.SetBudgetForCategory(ctx, "c1", raw)
		assert.True(t, errors.Is(err, customerr.ErrInvalidAmount), raw)
	}

	budgets, err := l.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget.Budgets{"c1": 100}, budgets)
}

func Test_OnDeleteBudget_ShouldReportWhetherItExisted(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "100"))

	existed, err := l.DeleteBudgetForCategory(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = l.DeleteBudgetForCategory(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func Test_OnSaveAllBudgets_ShouldReplaceMapping(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "100"))

	require.NoError(t, l.SaveAllBudgets(ctx, budget.Budgets{"c2": 5}))

	budgets, err := l.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget.Budgets{"c2": 5}, budgets)
}

func Test_OnReconcileBudgets_ShouldTreatBlankAsRemove(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)
	transport, err := l.FindCategoryByName(ctx, "Transport")
	require.NoError(t, err)
	fun, err := l.FindCategoryByName(ctx, "Entertainment")
	require.NoError(t, err)

	require.NoError(t, l.SaveAllBudgets(ctx, budget.Budgets{
		food.ID:      100,
		transport.ID: 50,
		"orphan":     7,
	}))

	changed, err := l.ReconcileBudgets(ctx, map[string]string{
		food.ID:      "120",
		transport.ID: " ",
		fun.ID:       "30",
	})
	require.NoError(t, err)
	assert.True(t, changed)

	budgets, err := l.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget.Budgets{food.ID: 120, fun.ID: 30, "orphan": 7}, budgets)
}

func Test_OnReconcileBudgetsWithSameValues_ShouldReportNoChange(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)
	require.NoError(t, l.SetBudgetForCategory(ctx, food.ID, "100"))

	changed, err := l.ReconcileBudgets(ctx, map[string]string{food.ID: "100.00"})

	require.NoError(t, err)
	assert.False(t, changed)
}

func Test_OnReconcileBudgetsWithInvalidInput_ShouldNotMutate(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)
	transport, err := l.FindCategoryByName(ctx, "Transport")
	require.NoError(t, err)
	require.NoError(t, l.SetBudgetForCategory(ctx, food.ID, "100"))

	_, err = l.ReconcileBudgets(ctx, map[string]string{food.ID: "", transport.ID: "-5"})
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	budgets, err := l.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget.Budgets{food.ID: 100}, budgets)
}
