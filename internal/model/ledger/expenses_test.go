package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

func expenseDraft(amount, date, categoryID, description string) expense.Draft {
	return expense.Draft{
		Amount:      amount,
		Date:        date,
		CategoryID:  categoryID,
		Description: description,
	}
}

func Test_OnAddExpenseToEmptyStore_ShouldStoreParsedExpense(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())

	added, err := l.AddExpense(ctx, expenseDraft("12.50", "2024-05-01", "c1", " Coffee "))
	require.NoError(t, err)

	exps, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, 12.5, exps[0].Amount)
	assert.Equal(t, "Coffee", exps[0].Description)
	assert.NotEmpty(t, exps[0].ID)
	assert.Equal(t, added.ID, exps[0].ID)
}

func Test_OnGetExpenseByID_ShouldReturnAddedExpense(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())

	added, err := l.AddExpense(ctx, expenseDraft("3", "2024-05-02", "c1", "Bus"))
	require.NoError(t, err)
	_, err = l.AddCategory(ctx, categoryDraft("Books"))
	require.NoError(t, err)

	got, err := l.GetExpenseByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
	assert.True(t, got.CreatedAt.Equal(testNow))
}

func Test_OnAddExpense_ShouldNotRequireExistingCategory(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	_, err := l.AddExpense(context.Background(), expenseDraft("1", "2024-05-02", "missing", ""))

	assert.NoError(t, err)
}

func Test_OnAddExpenseWithInvalidAmount_ShouldNotStore(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())

	_, err := l.AddExpense(ctx, expenseDraft("abc", "2024-05-02", "c1", ""))
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	exps, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, exps)
}

func Test_OnGetExpenseByUnknownID_ShouldReturnNotFound(t *testing.T) {
	l := newTestLedger(t, storage.NewInMemStorage())

	_, err := l.GetExpenseByID(context.Background(), "nope")

	assert.True(t, errors.Is(err, customerr.ErrNotFound))
}

func Test_OnUpdateExpense_ShouldKeepIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	added, err := l.AddExpense(ctx, expenseDraft("3", "2024-05-02", "c1", "Bus"))
	require.NoError(t, err)

	err = l.UpdateExpense(ctx, added.ID, expense.Draft{
		Amount:      "4.20",
		Date:        "2024-05-03",
		CategoryID:  "c2",
		Description: " Taxi ",
		Notes:       "late",
	})
	require.NoError(t, err)

	got, err := l.GetExpenseByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, added.CreatedAt, got.CreatedAt)
	assert.Equal(t, 4.2, got.Amount)
	assert.Equal(t, "2024-05-03", got.Date)
	assert.Equal(t, "c2", got.CategoryID)
	assert.Equal(t, "Taxi", got.Description)
	assert.Equal(t, "late", got.Notes)
}

func Test_OnUpdateUnknownExpense_ShouldLeaveCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	_, err := l.AddExpense(ctx, expenseDraft("3", "2024-05-02", "c1", "Bus"))
	require.NoError(t, err)
	before, err := l.GetExpenses(ctx)
	require.NoError(t, err)

	err = l.UpdateExpense(ctx, "nope", expenseDraft("9", "2024-05-02", "c1", "Other"))
	assert.True(t, errors.Is(err, customerr.ErrNotFound))

	after, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnDeleteExpense_ShouldRemoveOnlyThatExpense(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	first, err := l.AddExpense(ctx, expenseDraft("1", "2024-05-01", "c1", "a"))
	require.NoError(t, err)
	second, err := l.AddExpense(ctx, expenseDraft("2", "2024-05-02", "c1", "b"))
	require.NoError(t, err)

	require.NoError(t, l.DeleteExpense(ctx, first.ID))
	assert.True(t, errors.Is(l.DeleteExpense(ctx, first.ID), customerr.ErrNotFound))

	exps, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, second.ID, exps[0].ID)
}

func Test_OnDeleteExpenses_ShouldCountRemoved(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	first, err := l.AddExpense(ctx, expenseDraft("1", "2024-05-01", "c1", "a"))
	require.NoError(t, err)
	second, err := l.AddExpense(ctx, expenseDraft("2", "2024-05-02", "c1", "b"))
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, expenseDraft("3", "2024-05-03", "c1", "c"))
	require.NoError(t, err)

	deleted, err := l.DeleteExpenses(ctx, []string{first.ID, "nope", second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	exps, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, exps, 1)
}

func Test_OnListExpenses_ShouldSortNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage())
	for _, date := range []string{"2024-01-15", "bad", "2024-03-02", "2024-02-01"} {
		_, err := l.AddExpense(ctx, expenseDraft("1", date, "c1", date))
		require.NoError(t, err)
	}

	exps, err := l.ListExpenses(ctx)
	require.NoError(t, err)

	dates := make([]string, 0, len(exps))
	for _, exp := range exps {
		dates = append(dates, exp.Date)
	}
	assert.Equal(t, []string{"2024-03-02", "2024-02-01", "2024-01-15", "bad"}, dates)
}

func Test_OnConcurrentAddExpense_ShouldKeepEveryExpense(t *testing.T) {
	const writers = 50
	ctx := context.Background()
	l := newTestLedger(t, storage.NewInMemStorage(), WithIDGenerator(uuid.NewString))

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := l.AddExpense(ctx, expenseDraft("1", "2024-05-01", "c1", fmt.Sprintf("item %d", i)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	exps, err := l.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, exps, writers)
	seen := make(map[string]bool, writers)
	for _, e := range exps {
		seen[e.Description] = true
	}
	assert.Len(t, seen, writers)
}
