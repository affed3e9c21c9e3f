// Package bootstrap wires storage, ledger, report cache and generator from
// configuration. Every binary starts through it.
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/clients/cache"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/storage"
)

const shutdownTimeout = 5 * time.Second

type Components struct {
	Store     storage.Storage
	Ledger    *ledger.Ledger
	Generator *analytics.Generator
}

// Build opens the store and loads the ledger. A store that cannot be
// decoded is reported as an error; callers treat it as fatal.
func Build(ctx context.Context, cfg *config.Service) (*Components, error) {
	store, err := storage.New(cfg.Storage())
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}

	var (
		ledgerOpts    []ledger.Option
		generatorOpts []analytics.GeneratorOption
	)
	if mc := reportCache(cfg.Memcached()); mc != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithChangeHook(func(_ context.Context, c storage.Collection) {
			if err := mc.Invalidate(); err != nil {
				logger.Warn("report cache not invalidated", zap.String("collection", string(c)), zap.Error(err))
			}
		}))
		generatorOpts = append(generatorOpts, analytics.WithCache(mc))
	}

	l, err := ledger.New(ctx, store, ledgerOpts...)
	if err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "load ledger")
	}

	generator := analytics.NewGenerator(cfg.App(), l, analytics.NewResolver(time.Now), generatorOpts...)
	return &Components{Store: store, Ledger: l, Generator: generator}, nil
}

func (c *Components) Close() {
	if err := c.Store.Close(); err != nil {
		logger.Error("failed to close storage", zap.Error(err))
	}
}

func reportCache(cfg *config.MemcachedConfig) *cache.MemcacheClient {
	if len(cfg.Hosts()) == 0 {
		return nil
	}
	mc, err := cache.NewMemcache(cfg)
	if err != nil {
		logger.Warn("memcached unavailable, reports are not cached", zap.Error(err))
		return nil
	}
	return mc
}

// ServeMetrics exposes prometheus metrics until ctx is cancelled.
func ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", zap.Error(err))
		}
	}()

	logger.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve metrics")
	}
	return nil
}
