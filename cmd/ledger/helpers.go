package main

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/bootstrap"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/entity/category"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func loadConfig() (*config.Service, error) {
	if cfgFile != "" {
		return config.FromFile(cfgFile)
	}
	return config.New()
}

// openLedger loads configuration and the store. Callers must Close the result.
func openLedger(ctx context.Context) (*bootstrap.Components, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return bootstrap.Build(ctx, conf)
}

type categoryLookup interface {
	GetCategoryByID(ctx context.Context, id string) (category.Category, error)
	FindCategoryByName(ctx context.Context, name string) (category.Category, error)
}

// resolveCategory accepts either a category id or its name.
func resolveCategory(ctx context.Context, l categoryLookup, ref string) (category.Category, error) {
	cat, err := l.GetCategoryByID(ctx, ref)
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, customerr.ErrNotFound) {
		return category.Category{}, err
	}
	return l.FindCategoryByName(ctx, ref)
}

func categoryNames(cats []category.Category) map[string]string {
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names
}
