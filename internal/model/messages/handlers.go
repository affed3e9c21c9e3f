package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/ledger"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	helloMessage          = "Hello! I am your expense ledger bot 🤖\nSend /help to see what I can do"
	okMessage             = "Gotcha!"
	noExpensesMessage     = "You have no expenses yet"
	noCategoriesMessage   = "There are no categories"
	reportQueuedMessage   = "Preparing your report, it will arrive shortly"
	budgetsUnchanged      = "Budgets are unchanged"
	budgetNotSetMessage   = "There was no budget for this category"

	helpMessage = `/expense <amount> <category> [YYYY-MM-DD] [description] - add an expense
/edit <id> <amount> <category> <YYYY-MM-DD> [description] - replace an expense
/delete <id>... - delete expenses
/expenses - latest expenses
/categories - list categories
/category add <name> [color] [icon]
/category edit <name> <new-name> [color] [icon]
/category delete <name>
/budget set <category> <amount>
/budget delete <category>
/budgets - budget status for the latest month
/setbudgets <category>=<amount>... - replace all budgets, unlisted ones are cleared
/dashboard - summary of the latest month
/report [YYYY-MM-DD YYYY-MM-DD] - spending breakdown
/export - download all data
Send a JSON file with caption /import to restore data`

	expenseUsage     = "Usage: /expense <amount> <category> [YYYY-MM-DD] [description]"
	editUsage        = "Usage: /edit <id> <amount> <category> <YYYY-MM-DD> [description]"
	deleteUsage      = "Usage: /delete <id>..."
	categoryUsage    = "Usage: /category add|edit|delete <name> ..."
	budgetUsage      = "Usage: /budget set <category> <amount> or /budget delete <category>"
	setBudgetsUsage  = "Usage: /setbudgets <category>=<amount>..."
	reportUsage      = "Usage: /report or /report <YYYY-MM-DD> <YYYY-MM-DD>"
	importUsage      = "Attach a JSON file exported with /export and add the caption /import"
	exportNameLayout = "expenses-export-2006-01-02.json"

	expensesListLimit = 20
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	expenseCommand    = "/expense"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	expensesCommand   = "/expenses"
	categoriesCommand = "/categories"
	categoryCommand   = "/category"
	budgetCommand     = "/budget"
	budgetsCommand    = "/budgets"
	setBudgetsCommand = "/setbudgets"
	dashboardCommand  = "/dashboard"
	reportCommand     = "/report"
	exportCommand     = "/export"
	importCommand     = "/import"
)

type ledgerService interface {
	AddExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	UpdateExpense(ctx context.Context, id string, draft expense.Draft) error
	DeleteExpenses(ctx context.Context, ids []string) (int, error)
	GetExpenseByID(ctx context.Context, id string) (expense.Expense, error)
	ListExpenses(ctx context.Context) ([]expense.Expense, error)

	GetCategories(ctx context.Context) ([]category.Category, error)
	FindCategoryByName(ctx context.Context, name string) (category.Category, error)
	AddCategory(ctx context.Context, draft category.Draft) (category.Category, error)
	UpdateCategory(ctx context.Context, id string, draft category.Draft) error
	DeleteCategory(ctx context.Context, id string) error

	SetBudgetForCategory(ctx context.Context, categoryID, raw string) error
	DeleteBudgetForCategory(ctx context.Context, categoryID string) (bool, error)
	ReconcileBudgets(ctx context.Context, inputs map[string]string) (bool, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, payload []byte) (ledger.ImportResult, error)
}

type reportGenerator interface {
	Dashboard(ctx context.Context) (analytics.DashboardStats, error)
	Analytics(ctx context.Context, start, end string) (analytics.Report, error)
	Budgets(ctx context.Context) (analytics.BudgetReport, error)
}

// reportRequester hands report generation over to another process.
type reportRequester interface {
	RequestReport(ctx context.Context, chatID int64, start, end string) error
}

type HandlerOption func(s *HandlerService)

func WithReportRequester(r reportRequester) HandlerOption {
	return func(s *HandlerService) {
		s.requester = r
	}
}

func WithClock(clock func() time.Time) HandlerOption {
	return func(s *HandlerService) {
		s.clock = clock
	}
}

type handler func(ctx context.Context, arg string, msg Message) (Response, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      ledgerService
	generator   reportGenerator
	files       fileFetcher
	requester   reportRequester
	clock       func() time.Time
}

func newHandler(l ledgerService, generator reportGenerator, files fileFetcher, opts ...HandlerOption) *HandlerService {
	res := &HandlerService{
		ledger:    l,
		generator: generator,
		files:     files,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[expenseCommand] = s.handleExpense
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[expensesCommand] = s.handleExpenses
	m[categoriesCommand] = s.handleCategories
	m[categoryCommand] = s.handleCategory
	m[budgetCommand] = s.handleBudget
	m[budgetsCommand] = s.handleBudgets
	m[setBudgetsCommand] = s.handleSetBudgets
	m[dashboardCommand] = s.handleDashboard
	m[reportCommand] = s.handleReport
	m[exportCommand] = s.handleExport
	m[importCommand] = s.handleImport
	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, msg Message) (Response, error) {
	cmd, arg := parseCommand(msg.Text)

	handler, ok := s.handlersMap[cmd]
	if !ok {
		return textResponse(dontUnderstandMessage), nil
	}
	resp, err := handler(ctx, arg, msg)
	if err != nil {
		return Response{}, errors.Wrapf(err, "handle %s", cmd)
	}
	return resp, nil
}

func (s *HandlerService) handleStart(context.Context, string, Message) (Response, error) {
	return textResponse(helloMessage), nil
}

func (s *HandlerService) handleHelp(context.Context, string, Message) (Response, error) {
	return textResponse(helpMessage), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ Message) (Response, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return textResponse(expenseUsage), nil
	}
	cat, err := s.ledger.FindCategoryByName(ctx, args[1])
	if err != nil {
		return Response{}, err
	}

	date, rest, ok := splitDated(args[2:])
	if !ok {
		date = s.clock().Format(expense.DateLayout)
	}

	exp, err := s.ledger.AddExpense(ctx, expense.Draft{
		Amount:      args[0],
		Date:        date,
		CategoryID:  cat.ID,
		Description: strings.Join(rest, " "),
	})
	if err != nil {
		return Response{}, err
	}
	return textResponse(fmt.Sprintf("%s Added %.2f to %s on %s [%s]", okMessage, exp.Amount, cat.Name, exp.Date, exp.ID)), nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string, _ Message) (Response, error) {
	args := strings.Fields(arg)
	if len(args) < 4 {
		return textResponse(editUsage), nil
	}
	date, rest, ok := splitDated(args[3:])
	if !ok {
		return textResponse(editUsage), nil
	}

	current, err := s.ledger.GetExpenseByID(ctx, args[0])
	if err != nil {
		return Response{}, err
	}
	cat, err := s.ledger.FindCategoryByName(ctx, args[2])
	if err != nil {
		return Response{}, err
	}

	draft := current.Draft()
	draft.Amount = args[1]
	draft.CategoryID = cat.ID
	draft.Date = date
	draft.Description = strings.Join(rest, " ")
	if err = s.ledger.UpdateExpense(ctx, current.ID, draft); err != nil {
		return Response{}, err
	}
	return textResponse(okMessage), nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, _ Message) (Response, error) {
	ids := strings.Fields(arg)
	if len(ids) == 0 {
		return textResponse(deleteUsage), nil
	}
	deleted, err := s.ledger.DeleteExpenses(ctx, ids)
	if err != nil {
		return Response{}, err
	}
	if deleted == 0 {
		return Response{}, errors.Wrap(customerr.ErrNotFound, "delete expenses")
	}
	return textResponse(fmt.Sprintf("Deleted %d of %d expenses", deleted, len(ids))), nil
}

func (s *HandlerService) handleExpenses(ctx context.Context, _ string, _ Message) (Response, error) {
	exps, err := s.ledger.ListExpenses(ctx)
	if err != nil {
		return Response{}, err
	}
	if len(exps) == 0 {
		return textResponse(noExpensesMessage), nil
	}
	cats, err := s.ledger.GetCategories(ctx)
	if err != nil {
		return Response{}, err
	}

	text := ""
	if len(exps) > expensesListLimit {
		text = fmt.Sprintf("Latest %d of %d expenses:\n", expensesListLimit, len(exps))
		exps = exps[:expensesListLimit]
	}
	return textResponse(text + analytics.FormatExpenses(exps, cats)), nil
}

func (s *HandlerService) handleCategories(ctx context.Context, _ string, _ Message) (Response, error) {
	cats, err := s.ledger.GetCategories(ctx)
	if err != nil {
		return Response{}, err
	}
	if len(cats) == 0 {
		return textResponse(noCategoriesMessage), nil
	}
	return textResponse(analytics.FormatCategories(cats)), nil
}

func (s *HandlerService) handleCategory(ctx context.Context, arg string, _ Message) (Response, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return textResponse(categoryUsage), nil
	}

	switch args[0] {
	case "add":
		cat, err := s.ledger.AddCategory(ctx, category.Draft{
			Name:  args[1],
			Color: argAt(args, 2),
			Icon:  argAt(args, 3),
		})
		if err != nil {
			return Response{}, err
		}
		return textResponse(fmt.Sprintf("%s Category %s %s added", okMessage, cat.Icon, cat.Name)), nil
	case "edit":
		if len(args) < 3 {
			return textResponse(categoryUsage), nil
		}
		cat, err := s.ledger.FindCategoryByName(ctx, args[1])
		if err != nil {
			return Response{}, err
		}
		err = s.ledger.UpdateCategory(ctx, cat.ID, category.Draft{
			Name:  args[2],
			Color: argAt(args, 3),
			Icon:  argAt(args, 4),
		})
		if err != nil {
			return Response{}, err
		}
		return textResponse(okMessage), nil
	case "delete":
		cat, err := s.ledger.FindCategoryByName(ctx, args[1])
		if err != nil {
			return Response{}, err
		}
		if err = s.ledger.DeleteCategory(ctx, cat.ID); err != nil {
			return Response{}, err
		}
		return textResponse(fmt.Sprintf("%s Category %s deleted", okMessage, cat.Name)), nil
	default:
		return textResponse(categoryUsage), nil
	}
}

func (s *HandlerService) handleBudget(ctx context.Context, arg string, _ Message) (Response, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return textResponse(budgetUsage), nil
	}
	cat, err := s.ledger.FindCategoryByName(ctx, args[1])
	if err != nil {
		return Response{}, err
	}

	switch {
	case args[0] == "set" && len(args) == 3:
		if err = s.ledger.SetBudgetForCategory(ctx, cat.ID, args[2]); err != nil {
			return Response{}, err
		}
		return textResponse(okMessage), nil
	case args[0] == "delete":
		existed, err := s.ledger.DeleteBudgetForCategory(ctx, cat.ID)
		if err != nil {
			return Response{}, err
		}
		if !existed {
			return textResponse(budgetNotSetMessage), nil
		}
		return textResponse(okMessage), nil
	default:
		return textResponse(budgetUsage), nil
	}
}

func (s *HandlerService) handleBudgets(ctx context.Context, _ string, _ Message) (Response, error) {
	report, err := s.generator.Budgets(ctx)
	if err != nil {
		return Response{}, err
	}
	return textResponse(analytics.FormatBudgets(report)), nil
}

func (s *HandlerService) handleSetBudgets(ctx context.Context, arg string, _ Message) (Response, error) {
	assignments, ok := budget.ParseAssignments(strings.Fields(arg))
	if !ok {
		return textResponse(setBudgetsUsage), nil
	}

	inputs, err := budget.Inputs(assignments, func(name string) (string, error) {
		cat, err := s.ledger.FindCategoryByName(ctx, name)
		return cat.ID, err
	})
	if err != nil {
		return Response{}, err
	}

	changed, err := s.ledger.ReconcileBudgets(ctx, inputs)
	if err != nil {
		return Response{}, err
	}
	if !changed {
		return textResponse(budgetsUnchanged), nil
	}
	return s.handleBudgets(ctx, "", Message{})
}

func (s *HandlerService) handleDashboard(ctx context.Context, _ string, _ Message) (Response, error) {
	stats, err := s.generator.Dashboard(ctx)
	if err != nil {
		return Response{}, err
	}
	cats, err := s.ledger.GetCategories(ctx)
	if err != nil {
		return Response{}, err
	}
	return textResponse(analytics.FormatDashboard(stats, cats)), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, msg Message) (Response, error) {
	args := strings.Fields(arg)
	var start, end string
	switch len(args) {
	case 0:
	case 2:
		start, end = args[0], args[1]
	default:
		return textResponse(reportUsage), nil
	}

	if s.requester != nil {
		if err := s.requester.RequestReport(ctx, msg.UserID, start, end); err != nil {
			return Response{}, err
		}
		logger.Info("report requested", zap.Int64("userID", msg.UserID))
		return textResponse(reportQueuedMessage), nil
	}

	report, err := s.generator.Analytics(ctx, start, end)
	if err != nil {
		return Response{}, err
	}
	return textResponse(analytics.FormatReport(report)), nil
}

func (s *HandlerService) handleExport(ctx context.Context, _ string, _ Message) (Response, error) {
	payload, err := s.ledger.Export(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{Document: &Document{
		Name:    s.clock().Format(exportNameLayout),
		Payload: payload,
	}}, nil
}

func (s *HandlerService) handleImport(ctx context.Context, _ string, msg Message) (Response, error) {
	if msg.FileID == "" {
		return textResponse(importUsage), nil
	}
	payload, err := s.files.FetchFile(ctx, msg.FileID)
	if err != nil {
		return Response{}, err
	}
	res, err := s.ledger.Import(ctx, payload)
	if err != nil {
		return Response{}, err
	}
	return textResponse(res.Summary()), nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
