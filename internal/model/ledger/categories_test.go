package ledger

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

func categoryDraft(name string) category.Draft {
	return category.Draft{Name: name}
}

func Test_OnAddCategory_ShouldApplyDefaults(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	cat, err := l.AddCategory(context.Background(), categoryDraft(" Books "))

	require.NoError(t, err)
	assert.Equal(t, "Books", cat.Name)
	assert.Equal(t, category.DefaultColor, cat.Color)
	assert.Equal(t, category.DefaultIcon, cat.Icon)
	assert.False(t, cat.IsDefault)
}

func Test_OnAddCategoryWithDuplicateName_ShouldFailAndKeepCollection(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	before, err := l.GetCategories(ctx)
	require.NoError(t, err)

	for _, name := range []string{"food", "FOOD", " Food ", "fOoD"} {
		_, err = l.AddCategory(ctx, categoryDraft(name))
		assert.True(t, errors.Is(err, customerr.ErrDuplicateName), name)
	}

	after, err := l.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnAddCategoryWithEmptyName_ShouldFail(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	_, err := l.AddCategory(context.Background(), categoryDraft("  "))

	assert.True(t, errors.Is(err, customerr.ErrInvalidName))
}

func Test_OnFindCategoryByName_ShouldIgnoreCase(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())

	cat, err := l.FindCategoryByName(ctx, "transport")
	require.NoError(t, err)
	assert.Equal(t, "Transport", cat.Name)

	_, err = l.FindCategoryByName(ctx, "pets")
	assert.True(t, errors.Is(err, customerr.ErrNotFound))
}

func Test_OnUpdateCategory_ShouldPreserveIsDefault(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)

	require.NoError(t, l.UpdateCategory(ctx, food.ID, category.Draft{Name: "Groceries", Icon: "🛒"}))

	got, err := l.GetCategoryByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)
	assert.Equal(t, "🛒", got.Icon)
	assert.Equal(t, food.Color, got.Color)
	assert.True(t, got.IsDefault)
}

func Test_OnUpdateCategory_ShouldAllowRecasingOwnName(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)

	assert.NoError(t, l.UpdateCategory(ctx, food.ID, categoryDraft("FOOD")))
}

func Test_OnUpdateCategoryToTakenName_ShouldFailWithDuplicate(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)

	err = l.UpdateCategory(ctx, food.ID, categoryDraft("transport"))

	assert.True(t, errors.Is(err, customerr.ErrDuplicateName))
}

func Test_OnUpdateUnknownCategory_ShouldFailWithNotFound(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	err := l.UpdateCategory(context.Background(), "nope", categoryDraft("Pets"))

	assert.True(t, errors.Is(err, customerr.ErrNotFound))
}

func Test_OnDeleteUsedCategory_ShouldFailWithInUse(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	food, err := l.FindCategoryByName(ctx, "Food")
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, expenseDraft("5", "2024-05-01", food.ID, "Lunch"))
	require.NoError(t, err)

	err = l.DeleteCategory(ctx, food.ID)
	assert.True(t, errors.Is(err, customerr.ErrInUse))

	cats, err := l.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 5)
}

func Test_OnDeleteUnusedDefaultCategory_ShouldShrinkCollection(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	transport, err := l.FindCategoryByName(ctx, "Transport")
	require.NoError(t, err)
	require.True(t, transport.IsDefault)
	require.NoError(t, l.SetBudgetForCategory(ctx, transport.ID, "50"))

	require.NoError(t, l.DeleteCategory(ctx, transport.ID))

	cats, err := l.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 4)

	_, ok, err := l.GetBudgetForCategory(ctx, transport.ID)
	require.NoError(t, err)
	assert.True(t, ok, "budget of a deleted category stays stored")
}

func Test_OnDeleteUnknownCategory_ShouldFailWithNotFound(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	err := l.DeleteCategory(context.Background(), "nope")

	assert.True(t, errors.Is(err, customerr.ErrNotFound))
}
