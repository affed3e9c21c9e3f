package ledger

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

func (l *Ledger) GetCategories(ctx context.Context) ([]category.Category, error) {
	return l.loadCategories(ctx)
}

func (l *Ledger) GetCategoryByID(ctx context.Context, id string) (category.Category, error) {
	cats, err := l.loadCategories(ctx)
	if err != nil {
		return category.Category{}, err
	}
	for _, cat := range cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return category.Category{}, errors.Wrapf(customerr.ErrNotFound, "category %s", id)
}

// FindCategoryByName resolves a case-insensitive category name.
func (l *Ledger) FindCategoryByName(ctx context.Context, name string) (category.Category, error) {
	cats, err := l.loadCategories(ctx)
	if err != nil {
		return category.Category{}, err
	}
	for _, cat := range cats {
		if cat.HasName(name) {
			return cat, nil
		}
	}
	return category.Category{}, errors.Wrapf(customerr.ErrNotFound, "category %q", name)
}

func (l *Ledger) AddCategory(ctx context.Context, draft category.Draft) (category.Category, error) {
	cat, err := category.New(l.newID(), draft)
	if err != nil {
		return category.Category{}, errors.Wrap(err, "add category")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories(ctx)
	if err != nil {
		return category.Category{}, errors.Wrap(err, "add category")
	}
	if nameTaken(cats, cat.Name, "") {
		logger.Warn("category already exists", zap.String("name", cat.Name))
		return category.Category{}, errors.Wrapf(customerr.ErrDuplicateName, "category %q", cat.Name)
	}
	if err = l.save(ctx, storage.Categories, append(cats, cat)); err != nil {
		return category.Category{}, errors.Wrap(err, "add category")
	}

	logger.Info("category added", zap.String("categoryID", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

// UpdateCategory changes name, color and icon; IsDefault is preserved.
func (l *Ledger) UpdateCategory(ctx context.Context, id string, draft category.Draft) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "update category")
	}
	if nameTaken(cats, draft.Name, id) {
		logger.Warn("another category has this name", zap.String("name", draft.Name))
		return errors.Wrapf(customerr.ErrDuplicateName, "category %q", draft.Name)
	}

	idx := -1
	for i := range cats {
		if cats[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Warn("category not found for update", zap.String("categoryID", id))
		return errors.Wrapf(customerr.ErrNotFound, "category %s", id)
	}
	if err = cats[idx].Apply(draft); err != nil {
		return errors.Wrap(err, "update category")
	}
	if err = l.save(ctx, storage.Categories, cats); err != nil {
		return errors.Wrap(err, "update category")
	}

	logger.Info("category updated", zap.String("categoryID", id))
	return nil
}

// DeleteCategory removes a category nothing refers to. Default categories
// are not protected; only usage by expenses blocks deletion. The category
// budget, if any, stays stored as an orphan.
func (l *Ledger) DeleteCategory(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats, err := l.loadCategories(ctx)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}

	kept := make([]category.Category, 0, len(cats))
	var target *category.Category
	for i := range cats {
		if cats[i].ID == id {
			target = &cats[i]
			continue
		}
		kept = append(kept, cats[i])
	}
	if target == nil {
		logger.Warn("category not found for deletion", zap.String("categoryID", id))
		return errors.Wrapf(customerr.ErrNotFound, "category %s", id)
	}

	exps, err := l.loadExpenses(ctx)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	for _, exp := range exps {
		if exp.CategoryID == id {
			logger.Warn("category is used by expenses", zap.String("name", target.Name))
			return errors.Wrapf(customerr.ErrInUse, "category %q", target.Name)
		}
	}

	if err = l.save(ctx, storage.Categories, kept); err != nil {
		return errors.Wrap(err, "delete category")
	}

	logger.Info("category deleted", zap.String("categoryID", id))
	return nil
}

func nameTaken(cats []category.Category, name, exceptID string) bool {
	for _, cat := range cats {
		if cat.ID != exceptID && cat.HasName(name) {
			return true
		}
	}
	return false
}
