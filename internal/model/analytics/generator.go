package analytics

import (
	"context"
	"encoding/json"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/budget"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
)

const (
	dashboardKey     = "dashboard"
	budgetsKey       = "budgets"
	recentMonthKey   = "analytics:recent"
	analyticsKeyBase = "analytics:"
)

// Report is the analytics view of one window.
type Report struct {
	Window       Window             `json:"window"`
	Total        float64            `json:"total"`
	Count        int                `json:"count"`
	Categories   []CategoryTotal    `json:"categories"`
	Descriptions []DescriptionTotal `json:"descriptions"`
}

// BudgetReport always covers the most recent month with data.
type BudgetReport struct {
	Window   Window         `json:"window"`
	Budgets  budget.Budgets `json:"budgets"`
	Statuses []BudgetStatus `json:"statuses"`
}

type ledgerReader interface {
	GetExpenses(ctx context.Context) ([]expense.Expense, error)
	GetCategories(ctx context.Context) ([]category.Category, error)
	GetBudgets(ctx context.Context) (budget.Budgets, error)
}

// reportCache hands out the generation a lookup saw; a report built after a
// miss is stored under that generation only.
type reportCache interface {
	GetReport(key string) (payload []byte, gen uint64, err error)
	CacheReport(gen uint64, key string, payload []byte) error
}

type config interface {
	TopDescriptions() int
	RecentExpenses() int
}

type GeneratorOption func(g *Generator)

// WithCache stores generated views as JSON and serves them until the cache
// is invalidated.
func WithCache(cache reportCache) GeneratorOption {
	return func(g *Generator) {
		g.cache = cache
	}
}

type Generator struct {
	ledger   ledgerReader
	resolver *Resolver
	cache    reportCache

	topDescriptions int
	recentExpenses  int
}

func NewGenerator(cfg config, ledger ledgerReader, resolver *Resolver, opts ...GeneratorOption) *Generator {
	g := &Generator{
		ledger:          ledger,
		resolver:        resolver,
		topDescriptions: cfg.TopDescriptions(),
		recentExpenses:  cfg.RecentExpenses(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Dashboard(ctx context.Context) (DashboardStats, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateDashboard")
	defer span.Finish()

	stats, err := cached(g, dashboardKey, func() (DashboardStats, error) {
		exps, cats, err := g.load(ctx)
		if err != nil {
			return DashboardStats{}, err
		}
		return Dashboard(exps, cats, g.resolver.MostRecentMonth(exps), g.recentExpenses), nil
	})
	if err != nil {
		ext.Error.Set(span, true)
		return DashboardStats{}, errors.Wrap(err, "generate dashboard")
	}
	return stats, nil
}

// Analytics builds category and description breakdowns for an explicit
// range, or for the most recent month when either bound is not a date.
func (g *Generator) Analytics(ctx context.Context, start, end string) (Report, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateAnalytics")
	defer span.Finish()
	span.SetTag("start", start)
	span.SetTag("end", end)

	logger.Info("Analytics - start", zap.String("start", start), zap.String("end", end))
	defer logger.Info("Analytics - end")

	report, err := cached(g, analyticsKey(start, end), func() (Report, error) {
		exps, cats, err := g.load(ctx)
		if err != nil {
			return Report{}, err
		}
		w, err := g.resolver.Resolve(exps, start, end)
		if err != nil {
			return Report{}, err
		}
		inWindow := FilterExpenses(exps, w)
		return Report{
			Window:       w,
			Total:        Sum(inWindow),
			Count:        len(inWindow),
			Categories:   ByCategory(inWindow, cats),
			Descriptions: ByDescription(inWindow, g.topDescriptions),
		}, nil
	})
	if err != nil {
		ext.Error.Set(span, true)
		return Report{}, errors.Wrap(err, "generate analytics")
	}
	return report, nil
}

func (g *Generator) Budgets(ctx context.Context) (BudgetReport, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateBudgets")
	defer span.Finish()

	report, err := cached(g, budgetsKey, func() (BudgetReport, error) {
		exps, cats, err := g.load(ctx)
		if err != nil {
			return BudgetReport{}, err
		}
		budgets, err := g.ledger.GetBudgets(ctx)
		if err != nil {
			return BudgetReport{}, err
		}
		w := g.resolver.MostRecentMonth(exps)
		return BudgetReport{
			Window:   w,
			Budgets:  budgets,
			Statuses: BudgetStatuses(cats, budgets, FilterExpenses(exps, w)),
		}, nil
	})
	if err != nil {
		ext.Error.Set(span, true)
		return BudgetReport{}, errors.Wrap(err, "generate budgets")
	}
	return report, nil
}

func (g *Generator) load(ctx context.Context) ([]expense.Expense, []category.Category, error) {
	exps, err := g.ledger.GetExpenses(ctx)
	if err != nil {
		return nil, nil, err
	}
	cats, err := g.ledger.GetCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	return exps, cats, nil
}

// cached serves key from the report cache when possible. Cache failures
// only cost a rebuild; build errors are never cached.
func cached[T any](g *Generator, key string, build func() (T, error)) (T, error) {
	var (
		gen       uint64
		cacheable bool
	)
	if g.cache != nil {
		payload, current, err := g.cache.GetReport(key)
		switch {
		case err != nil:
			logger.Warn("report cache lookup failed", zap.String("key", key), zap.Error(err))
		case payload == nil:
			gen, cacheable = current, true
		default:
			var v T
			if err = json.Unmarshal(payload, &v); err == nil {
				return v, nil
			}
			logger.Warn("drop undecodable cached report", zap.String("key", key), zap.Error(err))
			gen, cacheable = current, true
		}
	}

	v, err := build()
	if err != nil {
		return v, err
	}

	if cacheable {
		payload, err := json.Marshal(v)
		if err == nil {
			err = g.cache.CacheReport(gen, key, payload)
		}
		if err != nil {
			logger.Warn("cache report", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

func analyticsKey(start, end string) string {
	_, okFrom := expense.ParseDate(start)
	_, okTo := expense.ParseDate(end)
	if !okFrom || !okTo {
		return recentMonthKey
	}
	return analyticsKeyBase + start + ":" + end
}
