package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-ledger/internal/bootstrap"
	"max.ks1230/expense-ledger/internal/clients/kafka"
	"max.ks1230/expense-ledger/internal/clients/tg"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := bootstrap.Build(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init ledger", zap.Error(err))
	}
	defer components.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), components.Generator, client)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bootstrap.ServeMetrics(ctx, conf.Metrics().Addr())
	})
	g.Go(func() error {
		return consumer.StartConsuming(ctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("reporter stopped", zap.Error(err))
	}
	logger.Info("reporter stopped")
}
