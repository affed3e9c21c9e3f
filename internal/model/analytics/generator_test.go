package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/analytics/mock"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func newLedgerMock(m *minimock.Controller) *mock.LedgerReaderMock {
	l := mock.NewLedgerReaderMock(m)
	l.GetExpensesMock.Return([]expense.Expense{
		{ID: "e1", Amount: 12.5, Date: "2024-05-01", CategoryID: "c1", Description: "Coffee"},
		{ID: "e2", Amount: 30, Date: "2024-05-03", CategoryID: "c2", Description: "Taxi"},
		{ID: "e3", Amount: 7.5, Date: "2024-04-28", CategoryID: "c1", Description: "coffee"},
	}, nil)
	l.GetCategoriesMock.Return(testCategories, nil)
	return l
}

func newTestGenerator(m *minimock.Controller, l ledgerReader, opts ...GeneratorOption) *Generator {
	cfg := mock.NewConfigMock(m).
		TopDescriptionsMock.Return(10).
		RecentExpensesMock.Return(5)
	resolver := NewResolver(fixedClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	return NewGenerator(cfg, l, resolver, opts...)
}

func Test_OnAnalytics_ShouldReportMostRecentMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	g := newTestGenerator(m, newLedgerMock(m))

	report, err := g.Analytics(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "2024-05", report.Window.Label)
	assert.Equal(t, 42.5, report.Total)
	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Transport", report.Categories[0].Name)
	assert.Equal(t, "Food", report.Categories[1].Name)
}

func Test_OnAnalyticsWithRange_ShouldGroupDescriptions(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	g := newTestGenerator(m, newLedgerMock(m))

	report, err := g.Analytics(context.Background(), "2024-04-01", "2024-05-02")

	require.NoError(t, err)
	assert.Equal(t, "2024-04-01 to 2024-05-02", report.Window.Label)
	assert.Equal(t, []DescriptionTotal{{Description: "Coffee", Total: 20}}, report.Descriptions)
}

func Test_OnAnalyticsWithReversedRange_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	g := newTestGenerator(m, newLedgerMock(m))

	_, err := g.Analytics(context.Background(), "2024-05-02", "2024-04-01")

	assert.True(t, errors.Is(err, customerr.ErrInvalidDateRange))
}

func Test_OnBudgets_ShouldUseMostRecentMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := newLedgerMock(m).
		GetBudgetsMock.Return(budget.Budgets{"c1": 10, "c2": 100}, nil)
	g := newTestGenerator(m, l)

	report, err := g.Budgets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-05", report.Window.Label)
	require.Len(t, report.Statuses, 2)
	assert.Equal(t, "c1", report.Statuses[0].CategoryID)
	assert.True(t, report.Statuses[0].IsOverBudget)
	assert.Equal(t, 125.0, report.Statuses[0].Percentage)
}

func Test_OnDashboardCacheMiss_ShouldStoreUnderLookupGeneration(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	c := mock.NewReportCacheMock(m)
	c.GetReportMock.Expect(dashboardKey).Return(nil, 4, nil)
	c.CacheReportMock.
		Inspect(func(gen uint64, key string, payload []byte) {
			assert.Equal(m, uint64(4), gen)
			assert.Equal(m, dashboardKey, key)
			assert.Contains(m, string(payload), `"name":"Transport"`)
		}).
		Return(nil)
	g := newTestGenerator(m, newLedgerMock(m), WithCache(c))

	stats, err := g.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, TopCategory{Name: "Transport", Amount: 30}, stats.TopCategory)
}

func Test_OnDashboardCacheHit_ShouldNotReadLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	payload, err := json.Marshal(DashboardStats{ExpenseCount: 7, TopCategory: TopCategory{Name: "Food", Amount: 1}})
	require.NoError(t, err)
	c := mock.NewReportCacheMock(m).
		GetReportMock.Expect(dashboardKey).Return(payload, 4, nil)
	g := newTestGenerator(m, mock.NewLedgerReaderMock(m), WithCache(c))

	stats, err := g.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, stats.ExpenseCount)
}

func Test_OnCacheLookupFailure_ShouldBuildWithoutStoring(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	c := mock.NewReportCacheMock(m).
		GetReportMock.Expect(recentMonthKey).Return(nil, 0, errors.New("connection refused"))
	g := newTestGenerator(m, newLedgerMock(m), WithCache(c))

	report, err := g.Analytics(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, 42.5, report.Total)
	assert.Zero(t, c.CacheReportBeforeCounter())
}

func Test_OnAnalyticsFailure_ShouldNotCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	c := mock.NewReportCacheMock(m).
		GetReportMock.Expect("analytics:2024-05-02:2024-04-01").Return(nil, 1, nil)
	g := newTestGenerator(m, newLedgerMock(m), WithCache(c))

	_, err := g.Analytics(context.Background(), "2024-05-02", "2024-04-01")

	assert.Error(t, err)
	assert.Zero(t, c.CacheReportBeforeCounter())
}

func Test_OnLedgerError_ShouldWrapIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	l := mock.NewLedgerReaderMock(m).
		GetExpensesMock.Return(nil, errors.New("disk on fire"))
	g := newTestGenerator(m, l)

	_, err := g.Budgets(context.Background())

	assert.ErrorContains(t, err, "disk on fire")
}
