package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/storage"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestLedger(t *testing.T, store collectionStore, opts ...Option) *Ledger {
	t.Helper()

	opts = append([]Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	}, opts...)

	l, err := New(context.Background(), store, opts...)
	require.NoError(t, err)
	return l
}

func Test_OnNew_ShouldSeedDefaultCategoriesOnce(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()

	l := newTestLedger(t, store)
	cats, err := l.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 5)
	assert.Equal(t, "Food", cats[0].Name)
	for _, cat := range cats {
		assert.True(t, cat.IsDefault)
	}

	require.NoError(t, l.DeleteCategory(ctx, cats[0].ID))

	l = newTestLedger(t, store)
	cats, err = l.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 4)
}

func Test_OnNew_ShouldNotReseedEmptyCategories(t *testing.T) {
	store := storage.NewInMemStorage()
	require.NoError(t, store.Write(context.Background(), storage.Categories, []byte(`[]`)))

	l := newTestLedger(t, store)
	cats, err := l.GetCategories(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cats)
}

func Test_OnNew_ShouldFailOnCorruptedCollection(t *testing.T) {
	for _, c := range []storage.Collection{storage.Expenses, storage.Categories, storage.Budgets} {
		store := storage.NewInMemStorage()
		require.NoError(t, store.Write(context.Background(), c, []byte(`{not json`)))

		_, err := New(context.Background(), store)

		assert.Error(t, err, string(c))
	}
}

func Test_OnMutation_ShouldCallChangeHook(t *testing.T) {
	ctx := context.Background()
	var changed []storage.Collection
	l := newTestLedger(t, storage.NewInMemStorage(), WithChangeHook(func(_ context.Context, c storage.Collection) {
		changed = append(changed, c)
	}))
	changed = nil

	_, err := l.AddExpense(ctx, expenseDraft("5", "2024-05-01", "c1", "Tea"))
	require.NoError(t, err)
	require.NoError(t, l.SetBudgetForCategory(ctx, "c1", "10"))

	assert.Equal(t, []storage.Collection{storage.Expenses, storage.Budgets}, changed)
}
