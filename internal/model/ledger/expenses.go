package ledger

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

// GetExpenses returns expenses in stored order.
func (l *Ledger) GetExpenses(ctx context.Context) ([]expense.Expense, error) {
	return l.loadExpenses(ctx)
}

// ListExpenses returns expenses newest first, undated ones last.
func (l *Ledger) ListExpenses(ctx context.Context) ([]expense.Expense, error) {
	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	expense.SortByDateDesc(exps)
	return exps, nil
}

func (l *Ledger) GetExpenseByID(ctx context.Context, id string) (expense.Expense, error) {
	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return expense.Expense{}, err
	}
	for _, exp := range exps {
		if exp.ID == id {
			return exp, nil
		}
	}
	return expense.Expense{}, errors.Wrapf(customerr.ErrNotFound, "expense %s", id)
}

// AddExpense stores a new expense. The category id is not checked against
// existing categories; unknown ids show up as "Unknown" in analytics.
func (l *Ledger) AddExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error) {
	exp, err := expense.New(l.newID(), l.clock().UTC(), draft)
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}
	if err = l.save(ctx, storage.Expenses, append(exps, exp)); err != nil {
		return expense.Expense{}, errors.Wrap(err, "add expense")
	}

	logger.Info("expense added", zap.String("expenseID", exp.ID), zap.Float64("amount", exp.Amount))
	return exp, nil
}

// UpdateExpense replaces every field but ID and CreatedAt.
func (l *Ledger) UpdateExpense(ctx context.Context, id string, draft expense.Draft) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return errors.Wrap(err, "update expense")
	}

	idx := indexOfExpense(exps, id)
	if idx < 0 {
		logger.Warn("expense not found for update", zap.String("expenseID", id))
		return errors.Wrapf(customerr.ErrNotFound, "expense %s", id)
	}
	if err = exps[idx].Apply(draft); err != nil {
		return errors.Wrap(err, "update expense")
	}
	if err = l.save(ctx, storage.Expenses, exps); err != nil {
		return errors.Wrap(err, "update expense")
	}

	logger.Info("expense updated", zap.String("expenseID", id))
	return nil
}

func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	deleted, err := l.DeleteExpenses(ctx, []string{id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		logger.Warn("expense not found for deletion", zap.String("expenseID", id))
		return errors.Wrapf(customerr.ErrNotFound, "expense %s", id)
	}
	return nil
}

// DeleteExpenses removes every listed expense in one write and reports how
// many existed. Unknown ids are skipped.
func (l *Ledger) DeleteExpenses(ctx context.Context, ids []string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "delete expenses")
	}

	kept := make([]expense.Expense, 0, len(exps))
	for _, exp := range exps {
		if _, ok := drop[exp.ID]; !ok {
			kept = append(kept, exp)
		}
	}

	deleted := len(exps) - len(kept)
	if deleted == 0 {
		return 0, nil
	}
	if err = l.save(ctx, storage.Expenses, kept); err != nil {
		return 0, errors.Wrap(err, "delete expenses")
	}

	logger.Info("expenses deleted", zap.Int("count", deleted))
	return deleted, nil
}

func indexOfExpense(exps []expense.Expense, id string) int {
	for i := range exps {
		if exps[i].ID == id {
			return i
		}
	}
	return -1
}
