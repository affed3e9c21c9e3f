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
	"max.ks1230/expense-ledger/internal/model/messages"
	"max.ks1230/expense-ledger/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

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

	var opts []messages.HandlerOption
	if conf.App().AsyncReports() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		opts = append(opts, messages.WithReportRequester(producer))
	}

	msgService := messages.NewService(client, components.Ledger, components.Generator, conf.Telegram(), opts...)

	logger.Info("Bot init - end")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bootstrap.ServeMetrics(ctx, conf.Metrics().Addr())
	})
	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("bot stopped", zap.Error(err))
	}
	logger.Info("bot stopped")
}
