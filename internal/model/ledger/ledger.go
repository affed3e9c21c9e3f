// Package ledger implements the expense, category and budget repositories
// on top of whole-collection storage. Every mutation reads the full
// collection, changes it in memory and writes it back.
package ledger

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/storage"
)

type collectionStore interface {
	Read(ctx context.Context, c storage.Collection) ([]byte, error)
	Write(ctx context.Context, c storage.Collection, payload []byte) error
}

// ChangeHook is called after a collection was written successfully.
type ChangeHook func(ctx context.Context, c storage.Collection)

type Option func(l *Ledger)

func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

func WithChangeHook(hook ChangeHook) Option {
	return func(l *Ledger) {
		l.hooks = append(l.hooks, hook)
	}
}

type Ledger struct {
	store collectionStore
	clock func() time.Time
	newID func() string
	hooks []ChangeHook

	// mu serializes read-modify-write cycles of all collections.
	mu sync.Mutex
}

// New checks that every stored collection can be decoded and seeds the
// default categories on first start. A decoding error means the store is
// corrupted and the caller should not continue.
func New(ctx context.Context, store collectionStore, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store: store,
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}

	if _, err := l.GetExpenses(ctx); err != nil {
		return nil, errors.Wrap(err, "init ledger")
	}
	if _, err := l.GetBudgets(ctx); err != nil {
		return nil, errors.Wrap(err, "init ledger")
	}
	if err := l.seedCategories(ctx); err != nil {
		return nil, errors.Wrap(err, "init ledger")
	}
	return l, nil
}

func (l *Ledger) seedCategories(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var cats []category.Category
	found, err := l.load(ctx, storage.Categories, &cats)
	if err != nil || found {
		return err
	}

	cats = category.Defaults(l.newID)
	logger.Info("seeding default categories", zap.Int("count", len(cats)))
	return l.save(ctx, storage.Categories, cats)
}

// load decodes a collection into dst; found is false when it was never written.
func (l *Ledger) load(ctx context.Context, c storage.Collection, dst any) (found bool, err error) {
	payload, err := l.store.Read(ctx, c)
	if err != nil {
		return false, errors.Wrapf(err, "load %s", c)
	}
	if len(payload) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(payload, dst); err != nil {
		return false, errors.Wrapf(err, "decode %s", c)
	}
	return true, nil
}

func (l *Ledger) save(ctx context.Context, c storage.Collection, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", c)
	}
	if err = l.store.Write(ctx, c, payload); err != nil {
		return errors.Wrapf(err, "save %s", c)
	}
	for _, hook := range l.hooks {
		hook(ctx, c)
	}
	return nil
}

func (l *Ledger) loadExpenses(ctx context.Context) ([]expense.Expense, error) {
	exps := make([]expense.Expense, 0)
	if _, err := l.load(ctx, storage.Expenses, &exps); err != nil {
		return nil, err
	}
	if exps == nil {
		exps = make([]expense.Expense, 0)
	}
	return exps, nil
}

func (l *Ledger) loadCategories(ctx context.Context) ([]category.Category, error) {
	cats := make([]category.Category, 0)
	if _, err := l.load(ctx, storage.Categories, &cats); err != nil {
		return nil, err
	}
	if cats == nil {
		cats = make([]category.Category, 0)
	}
	return cats, nil
}

func (l *Ledger) loadBudgets(ctx context.Context) (budget.Budgets, error) {
	budgets := make(budget.Budgets)
	if _, err := l.load(ctx, storage.Budgets, &budgets); err != nil {
		return nil, err
	}
	if budgets == nil {
		budgets = make(budget.Budgets)
	}
	return budgets, nil
}
