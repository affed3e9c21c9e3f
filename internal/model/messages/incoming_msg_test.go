package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/messages/mock"
)

const testUser = int64(123)

var food = category.Category{ID: "c1", Name: "Food", Icon: "🍔", Color: "#FF6384", IsDefault: true}

type fixture struct {
	client    *mock.TelegramClientMock
	ledger    *mock.LedgerServiceMock
	generator *mock.ReportGeneratorMock
	service   *Service
}

func newFixture(m *minimock.Controller, owner int64, opts ...HandlerOption) *fixture {
	f := &fixture{
		client:    mock.NewTelegramClientMock(m),
		ledger:    mock.NewLedgerServiceMock(m),
		generator: mock.NewReportGeneratorMock(m),
	}
	cfg := mock.NewOwnerConfigMock(m)
	cfg.OwnerIDMock.Return(owner)

	opts = append([]HandlerOption{
		WithClock(func() time.Time { return time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC) }),
	}, opts...)
	f.service = NewService(f.client, f.ledger, f.generator, cfg, opts...)
	return f
}

func (f *fixture) send(text string) error {
	return f.service.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: testUser})
}

// categoriesByName answers FindCategoryByName from a fixed set.
func categoriesByName(cats ...category.Category) func(context.Context, string) (category.Category, error) {
	return func(_ context.Context, name string) (category.Category, error) {
		for _, c := range cats {
			if c.HasName(name) {
				return c, nil
			}
		}
		return category.Category{}, errors.Wrapf(customerr.ErrNotFound, "category %q", name)
	}
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.client.SendMessageMock.Expect(helloMessage, testUser).Return(nil)

	assert.NoError(t, f.send("/start"))
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpHint(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.client.SendMessageMock.Expect(dontUnderstandMessage, testUser).Return(nil)

	assert.NoError(t, f.send("/none"))
}

func Test_OnMessageFromStranger_ShouldRefuse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 999)
	f.client.SendMessageMock.Expect(privateBotMessage, testUser).Return(nil)

	assert.NoError(t, f.send("/expenses"))
	assert.Equal(t, uint64(0), f.ledger.ListExpensesBeforeCounter())
}

func Test_OnExpenseCommand_ShouldAddExpenseDatedToday(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, testUser)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.ledger.AddExpenseMock.Inspect(func(_ context.Context, draft expense.Draft) {
		assert.Equal(m, expense.Draft{
			Amount:      "12.50",
			Date:        "2024-05-10",
			CategoryID:  "c1",
			Description: "Coffee with Ann",
		}, draft)
	}).Return(expense.Expense{ID: "e1", Amount: 12.5, Date: "2024-05-10"}, nil)
	f.client.SendMessageMock.Expect("Gotcha! Added 12.50 to Food on 2024-05-10 [e1]", testUser).Return(nil)

	assert.NoError(t, f.send("/expense 12.50 food Coffee with Ann"))
}

func Test_OnExpenseCommandWithDate_ShouldUseIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.ledger.AddExpenseMock.Inspect(func(_ context.Context, draft expense.Draft) {
		assert.Equal(m, expense.Draft{Amount: "3", Date: "2024-04-01", CategoryID: "c1"}, draft)
	}).Return(expense.Expense{ID: "e2", Amount: 3, Date: "2024-04-01"}, nil)
	f.client.SendMessageMock.Expect("Gotcha! Added 3.00 to Food on 2024-04-01 [e2]", testUser).Return(nil)

	assert.NoError(t, f.send("/expense 3 Food 2024-04-01"))
}

func Test_OnExpenseWithInvalidAmount_ShouldExplainAndNotFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.ledger.AddExpenseMock.Return(expense.Expense{}, errors.Wrap(customerr.ErrInvalidAmount, "add expense"))
	f.client.SendMessageMock.Expect(customerr.UserMessage(customerr.ErrInvalidAmount), testUser).Return(nil)

	assert.NoError(t, f.send("/expense -3 Food"))
}

func Test_OnExpenseWithoutArgs_ShouldShowUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.client.SendMessageMock.Expect(expenseUsage, testUser).Return(nil)

	assert.NoError(t, f.send("/expense 5"))
}

func Test_OnEditCommand_ShouldKeepNotes(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.GetExpenseByIDMock.Inspect(func(_ context.Context, id string) {
		assert.Equal(m, "e1", id)
	}).Return(expense.Expense{ID: "e1", Amount: 1, Date: "2024-01-01", CategoryID: "c9", Notes: "keep me"}, nil)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.ledger.UpdateExpenseMock.Inspect(func(_ context.Context, id string, draft expense.Draft) {
		assert.Equal(m, "e1", id)
		assert.Equal(m, expense.Draft{
			Amount:      "7",
			Date:        "2024-05-02",
			CategoryID:  "c1",
			Description: "Lunch",
			Notes:       "keep me",
		}, draft)
	}).Return(nil)
	f.client.SendMessageMock.Expect(okMessage, testUser).Return(nil)

	assert.NoError(t, f.send("/edit e1 7 Food 2024-05-02 Lunch"))
}

func Test_OnDeleteUnknownExpenses_ShouldReportNotFound(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.DeleteExpensesMock.Inspect(func(_ context.Context, ids []string) {
		assert.Equal(m, []string{"x", "y"}, ids)
	}).Return(0, nil)
	f.client.SendMessageMock.Expect(customerr.UserMessage(customerr.ErrNotFound), testUser).Return(nil)

	assert.NoError(t, f.send("/delete x y"))
}

func Test_OnCategoryDeleteInUse_ShouldExplain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.ledger.DeleteCategoryMock.Inspect(func(_ context.Context, id string) {
		assert.Equal(m, "c1", id)
	}).Return(errors.Wrap(customerr.ErrInUse, "delete category"))
	f.client.SendMessageMock.Expect(customerr.UserMessage(customerr.ErrInUse), testUser).Return(nil)

	assert.NoError(t, f.send("/category delete Food"))
}

func Test_OnCategoryAdd_ShouldPassColorAndIcon(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.AddCategoryMock.Inspect(func(_ context.Context, draft category.Draft) {
		assert.Equal(m, category.Draft{Name: "Pets", Color: "#123456", Icon: "🐶"}, draft)
	}).Return(category.Category{ID: "c7", Name: "Pets", Icon: "🐶"}, nil)
	f.client.SendMessageMock.Expect("Gotcha! Category 🐶 Pets added", testUser).Return(nil)

	assert.NoError(t, f.send("/category add Pets #123456 🐶"))
}

func Test_OnSetBudgets_ShouldReconcileByCategoryID(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food, category.Category{ID: "c2", Name: "Transport"}))
	f.ledger.ReconcileBudgetsMock.Inspect(func(_ context.Context, inputs map[string]string) {
		assert.Equal(m, map[string]string{"c1": "100", "c2": ""}, inputs)
	}).Return(true, nil)
	f.generator.BudgetsMock.Return(analytics.BudgetReport{Window: analytics.Window{Label: "2024-05"}}, nil)
	f.client.SendMessageMock.Expect("Budgets for 2024-05\n\nNo budgets set", testUser).Return(nil)

	assert.NoError(t, f.send("/setbudgets Food=100 Transport="))
}

func Test_OnSetBudgetsWithSameCategoryTwice_ShouldRefuse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.FindCategoryByNameMock.Set(categoriesByName(food))
	f.client.SendMessageMock.Expect(customerr.UserMessage(customerr.ErrRepeatedCategory), testUser).Return(nil)

	assert.NoError(t, f.send("/setbudgets Food=1 food=2"))
	assert.Equal(t, uint64(0), f.ledger.ReconcileBudgetsBeforeCounter())
}

func Test_OnReportWithAsyncRequester_ShouldQueueRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	requester := mock.NewReportRequesterMock(m)
	requester.RequestReportMock.Inspect(func(_ context.Context, chatID int64, start, end string) {
		assert.Equal(m, testUser, chatID)
		assert.Equal(m, "2024-01-01", start)
		assert.Equal(m, "2024-01-31", end)
	}).Return(nil)
	f := newFixture(m, 0, WithReportRequester(requester))
	f.client.SendMessageMock.Expect(reportQueuedMessage, testUser).Return(nil)

	assert.NoError(t, f.send("/report 2024-01-01 2024-01-31"))
	assert.Equal(t, uint64(0), f.generator.AnalyticsBeforeCounter())
}

func Test_OnReport_ShouldRenderAnalytics(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.generator.AnalyticsMock.Inspect(func(_ context.Context, start, end string) {
		assert.Empty(m, start)
		assert.Empty(m, end)
	}).Return(analytics.Report{Window: analytics.Window{Label: "2024-05"}}, nil)
	f.client.SendMessageMock.Expect("Spending for 2024-05\n\nNo expenses in this period", testUser).Return(nil)

	assert.NoError(t, f.send("/report"))
}

func Test_OnExport_ShouldSendDocument(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.ExportMock.Return([]byte(`{}`), nil)
	f.client.SendDocumentMock.Expect("expenses-export-2024-05-10.json", []byte(`{}`), testUser).Return(nil)

	assert.NoError(t, f.send("/export"))
}

func Test_OnImportDocument_ShouldImportFetchedFile(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	payload := []byte(`{"budgets":{}}`)
	f.client.FetchFileMock.Inspect(func(_ context.Context, fileID string) {
		assert.Equal(m, "file-1", fileID)
	}).Return(payload, nil)
	f.ledger.ImportMock.Inspect(func(_ context.Context, got []byte) {
		assert.Equal(m, payload, got)
	}).Return(ledger.ImportResult{Budgets: true}, nil)
	f.client.SendMessageMock.Expect("Imported budgets", testUser).Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/import", UserID: testUser, FileID: "file-1"})

	assert.NoError(t, err)
}

func Test_OnStoreFailure_ShouldApologizeAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, 0)
	f.ledger.ListExpensesMock.Return(nil, errors.New("disk on fire"))
	f.client.SendMessageMock.Expect(customerr.UserMessage(nil), testUser).Return(nil)

	assert.Error(t, f.send("/expenses"))
}
