package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

// Snapshot is the export document.
type Snapshot struct {
	Expenses   []expense.Expense   `json:"expenses"`
	Categories []category.Category `json:"categories"`
	Budgets    budget.Budgets      `json:"budgets"`
}

// ImportResult tells which collections an import replaced.
type ImportResult struct {
	Expenses   bool
	Categories bool
	Budgets    bool
}

func (r ImportResult) Any() bool {
	return r.Expenses || r.Categories || r.Budgets
}

// Summary names the replaced collections for the owner.
func (r ImportResult) Summary() string {
	if !r.Any() {
		return "Nothing to import: the file has no expenses, categories or budgets"
	}
	replaced := make([]string, 0, 3)
	if r.Expenses {
		replaced = append(replaced, "expenses")
	}
	if r.Categories {
		replaced = append(replaced, "categories")
	}
	if r.Budgets {
		replaced = append(replaced, "budgets")
	}
	return "Imported " + strings.Join(replaced, ", ")
}

func (l *Ledger) Snapshot(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		snap Snapshot
		err  error
	)
	if snap.Expenses, err = l.loadExpenses(ctx); err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot")
	}
	if snap.Categories, err = l.loadCategories(ctx); err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot")
	}
	if snap.Budgets, err = l.loadBudgets(ctx); err != nil {
		return Snapshot{}, errors.Wrap(err, "snapshot")
	}
	return snap, nil
}

// Export renders all collections as one indented JSON document.
func (l *Ledger) Export(ctx context.Context) ([]byte, error) {
	snap, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "export")
	}
	return payload, nil
}

// Import replaces every collection present in payload with a valid shape.
// Keys that are missing, null or of the wrong shape are skipped silently;
// only a payload that is not JSON at all is an error.
func (l *Ledger) Import(ctx context.Context, payload []byte) (ImportResult, error) {
	if !json.Valid(payload) {
		logger.Warn("import payload is not valid json", zap.Int("size", len(payload)))
		return ImportResult{}, errors.Wrap(customerr.ErrParse, "import")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		logger.Info("import payload is not an object, nothing applied")
		return ImportResult{}, nil
	}

	var (
		exps   []expense.Expense
		cats   []category.Category
		bdgts  budget.Budgets
		result ImportResult
	)
	result.Expenses = decodeShaped(doc["expenses"], '[', &exps)
	result.Categories = decodeShaped(doc["categories"], '[', &cats)
	result.Budgets = decodeShaped(doc["budgets"], '{', &bdgts)

	l.mu.Lock()
	defer l.mu.Unlock()

	if result.Expenses {
		if exps == nil {
			exps = make([]expense.Expense, 0)
		}
		if err := l.save(ctx, storage.Expenses, exps); err != nil {
			return ImportResult{}, errors.Wrap(err, "import")
		}
	}
	if result.Categories {
		if cats == nil {
			cats = make([]category.Category, 0)
		}
		if err := l.save(ctx, storage.Categories, cats); err != nil {
			return ImportResult{}, errors.Wrap(err, "import")
		}
	}
	if result.Budgets {
		if err := l.saveAllBudgets(ctx, bdgts); err != nil {
			return ImportResult{}, errors.Wrap(err, "import")
		}
	}

	logger.Info("import applied",
		zap.Bool("expenses", result.Expenses),
		zap.Bool("categories", result.Categories),
		zap.Bool("budgets", result.Budgets),
	)
	return result, nil
}

// decodeShaped decodes raw into dst when it starts with the expected
// delimiter and matches the target type.
func decodeShaped(raw json.RawMessage, delim byte, dst any) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != delim {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
