package ledger

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/storage"
)

// GetBudgets returns all stored budgets, including orphans of deleted categories.
func (l *Ledger) GetBudgets(ctx context.Context) (budget.Budgets, error) {
	return l.loadBudgets(ctx)
}

// SetBudgetForCategory upserts one budget. Invalid input leaves the store untouched.
func (l *Ledger) SetBudgetForCategory(ctx context.Context, categoryID, raw string) error {
	amount, err := budget.ParseAmount(raw)
	if err != nil {
		return errors.Wrap(err, "set budget")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	budgets, err := l.loadBudgets(ctx)
	if err != nil {
		return errors.Wrap(err, "set budget")
	}
	budgets[categoryID] = amount
	if err = l.save(ctx, storage.Budgets, budgets); err != nil {
		return errors.Wrap(err, "set budget")
	}

	logger.Info("budget set", zap.String("categoryID", categoryID), zap.Float64("amount", amount))
	return nil
}

func (l *Ledger) GetBudgetForCategory(ctx context.Context, categoryID string) (float64, bool, error) {
	budgets, err := l.loadBudgets(ctx)
	if err != nil {
		return 0, false, err
	}
	amount, ok := budgets.Get(categoryID)
	return amount, ok, nil
}

// DeleteBudgetForCategory reports whether a budget existed.
func (l *Ledger) DeleteBudgetForCategory(ctx context.Context, categoryID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets, err := l.loadBudgets(ctx)
	if err != nil {
		return false, errors.Wrap(err, "delete budget")
	}
	if _, ok := budgets[categoryID]; !ok {
		return false, nil
	}
	delete(budgets, categoryID)
	if err = l.save(ctx, storage.Budgets, budgets); err != nil {
		return false, errors.Wrap(err, "delete budget")
	}

	logger.Info("budget deleted", zap.String("categoryID", categoryID))
	return true, nil
}

// SaveAllBudgets replaces the whole mapping without validating it.
func (l *Ledger) SaveAllBudgets(ctx context.Context, budgets budget.Budgets) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.saveAllBudgets(ctx, budgets)
}

func (l *Ledger) saveAllBudgets(ctx context.Context, budgets budget.Budgets) error {
	if budgets == nil {
		budgets = make(budget.Budgets)
	}
	if err := l.save(ctx, storage.Budgets, budgets); err != nil {
		return errors.Wrap(err, "save budgets")
	}
	return nil
}

// ReconcileBudgets applies a full budget form: inputs maps category ids to
// raw amounts. For every existing category a non-blank input is upserted and
// a blank or missing one removes the stored budget. Budgets of deleted
// categories are left alone. Nothing is written if any input is invalid.
func (l *Ledger) ReconcileBudgets(ctx context.Context, inputs map[string]string) (bool, error) {
	parsed := make(map[string]float64, len(inputs))
	for categoryID, raw := range inputs {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		amount, err := budget.ParseAmount(raw)
		if err != nil {
			return false, errors.Wrapf(err, "reconcile budget for %s", categoryID)
		}
		parsed[categoryID] = amount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories(ctx)
	if err != nil {
		return false, errors.Wrap(err, "reconcile budgets")
	}
	current, err := l.loadBudgets(ctx)
	if err != nil {
		return false, errors.Wrap(err, "reconcile budgets")
	}

	next := current.Clone()
	for _, cat := range cats {
		if amount, ok := parsed[cat.ID]; ok {
			next[cat.ID] = amount
		} else {
			delete(next, cat.ID)
		}
	}

	if next.Equal(current) {
		return false, nil
	}
	if err = l.saveAllBudgets(ctx, next); err != nil {
		return false, errors.Wrap(err, "reconcile budgets")
	}

	logger.Info("budgets reconciled", zap.Int("count", len(next)))
	return true, nil
}
