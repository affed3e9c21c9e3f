package ledger

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

func seededLedger(t *testing.T) *Ledger {
	t.Helper()
	ctx := context.Background()

	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, expenseDraft("12.50", "2024-05-01", food.ID, "Coffee"))
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, expenseDraft("3", "2024-04-20", "gone", ""))
	require.NoError(t, err)
	require.NoError(t, l.SetBudgetForCategory(ctx, food.ID, "200"))
	return l
}

func Test_OnImportOfExport_ShouldKeepCollectionsIdentical(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)
	before, err := l.Snapshot(ctx)
	require.NoError(t, err)

	payload, err := l.Export(ctx)
	require.NoError(t, err)

	result, err := l.Import(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Expenses: true, Categories: true, Budgets: true}, result)

	after, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnImportIntoFreshLedger_ShouldReproduceExport(t *testing.T) {
	ctx := context.Background()
	payload, err := seededLedger(t).Export(ctx)
	require.NoError(t, err)

	fresh := newTestLedger(t, storage.NewInMemStorage())
	_, err = fresh.Import(ctx, payload)
	require.NoError(t, err)

	again, err := fresh.Export(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(again))
}

func Test_OnImportMalformedPayload_ShouldFailWithoutChanges(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)
	before, err := l.Snapshot(ctx)
	require.NoError(t, err)

	_, err = l.Import(ctx, []byte(`{"expenses": [`))
	assert.True(t, errors.Is(err, customerr.ErrParse))

	after, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnImport_ShouldSkipCollectionsWithWrongShape(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)
	before, err := l.Snapshot(ctx)
	require.NoError(t, err)

	result, err := l.Import(ctx, []byte(`{
		"expenses": {"id": "x"},
		"categories": [{"id": "k1", "name": "Pets", "color": "#000", "icon": "🐶", "isDefault": false}],
		"budgets": [1, 2]
	}`))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Categories: true}, result)

	after, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Expenses, after.Expenses)
	assert.Equal(t, before.Budgets, after.Budgets)
	require.Len(t, after.Categories, 1)
	assert.Equal(t, "Pets", after.Categories[0].Name)
}

func Test_OnImport_ShouldSkipMissingAndNullKeys(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)
	before, err := l.Snapshot(ctx)
	require.NoError(t, err)

	result, err := l.Import(ctx, []byte(`{"expenses": [], "budgets": null}`))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Expenses: true}, result)

	after, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, after.Expenses)
	assert.Equal(t, before.Categories, after.Categories)
	assert.Equal(t, before.Budgets, after.Budgets)
}

func Test_OnImportNonObjectJSON_ShouldApplyNothing(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)

	result, err := l.Import(ctx, []byte(`[1, 2, 3]`))

	require.NoError(t, err)
	assert.False(t, result.Any())
}

func Test_OnImportBudgetsWithNonNumbers_ShouldSkipBudgets(t *testing.T) {
	ctx := context.Background()
	l := seededLedger(t)
	before, err := l.GetBudgets(ctx)
	require.NoError(t, err)

	result, err := l.Import(ctx, []byte(`{"budgets": {"c1": "lots"}}`))
	require.NoError(t, err)
	assert.False(t, result.Budgets)

	after, err := l.GetBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnImportResultSummary_ShouldNameReplacedCollections(t *testing.T) {
	assert.Equal(t, "Nothing to import: the file has no expenses, categories or budgets", ImportResult{}.Summary())
	assert.Equal(t, "Imported expenses, budgets", ImportResult{Expenses: true, Budgets: true}.Summary())
	assert.Equal(t, "Imported categories", ImportResult{Categories: true}.Summary())
}
