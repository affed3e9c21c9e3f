package analytics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func datedExpenses(dates ...string) []expense.Expense {
	res := make([]expense.Expense, 0, len(dates))
	for i, d := range dates {
		res = append(res, expense.Expense{ID: d, Amount: float64(i + 1), Date: d, CategoryID: "c1"})
	}
	return res
}

func Test_OnResolveWithoutBounds_ShouldUseMostRecentMonth(t *testing.T) {
	r := NewResolver(fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	w, err := r.Resolve(datedExpenses("2024-01-15", "2024-03-02"), "", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-03", w.Label)
	assert.Equal(t, "2024-03-01", w.Start.Format(expense.DateLayout))
	assert.Equal(t, "2024-03-31", w.End.Format(expense.DateLayout))
	assert.True(t, w.Contains(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_OnResolveWithoutValidDates_ShouldUseCurrentMonth(t *testing.T) {
	r := NewResolver(fixedClock(time.Date(2024, 2, 14, 18, 30, 0, 0, time.UTC)))

	w, err := r.Resolve(datedExpenses("bad", "2024-13-01", ""), "", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-02", w.Label)
	assert.Equal(t, "2024-02-29", w.End.Format(expense.DateLayout))
}

func Test_OnResolveWithExplicitRange_ShouldCoverWholeDays(t *testing.T) {
	r := NewResolver(nil)

	w, err := r.Resolve(nil, "2024-01-10", "2024-01-20")

	require.NoError(t, err)
	assert.Equal(t, "2024-01-10 to 2024-01-20", w.Label)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, 23, w.End.Hour())
	assert.Equal(t, 59, w.End.Second())
	assert.True(t, w.Contains(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))
}

func Test_OnResolveWithSingleDayRange_ShouldContainThatDay(t *testing.T) {
	w, err := NewResolver(nil).Resolve(nil, "2024-01-10", "2024-01-10")

	require.NoError(t, err)
	assert.Len(t, FilterExpenses(datedExpenses("2024-01-10", "2024-01-11"), w), 1)
}

func Test_OnResolveWithReversedRange_ShouldFail(t *testing.T) {
	_, err := NewResolver(nil).Resolve(nil, "2024-02-01", "2024-01-01")

	assert.True(t, errors.Is(err, customerr.ErrInvalidDateRange))
}

func Test_OnResolveWithOneInvalidBound_ShouldFallBackToRecentMonth(t *testing.T) {
	r := NewResolver(nil)

	w, err := r.Resolve(datedExpenses("2024-03-02"), "2024-01-01", "2024-02-30")

	require.NoError(t, err)
	assert.Equal(t, "2024-03", w.Label)
}

func Test_OnFilterExpenses_ShouldSkipInvalidDates(t *testing.T) {
	w, err := NewResolver(nil).Resolve(nil, "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	got := FilterExpenses(datedExpenses("2024-03-01", "2024-3-05", "2024-03-31", "2024-04-01", "garbage"), w)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, "2024-03-31", got[1].Date)
}
