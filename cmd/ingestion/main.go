package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tanim1993/RelocationJobxyz/internal/config"
	"github.com/Tanim1993/RelocationJobxyz/internal/jsearch"
	"github.com/Tanim1993/RelocationJobxyz/internal/messaging"
	"github.com/Tanim1993/RelocationJobxyz/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Info("starting ingestion service",
		zap.Strings("search_terms", cfg.SearchTerms),
		zap.Duration("polling_interval", cfg.PollingInterval))

	client := jsearch.NewClient(logger, cfg)

	publisher, err := messaging.NewPublisher(logger, cfg)
	if err != nil {
		logger.Fatal("failed to create NATS publisher", zap.Error(err))
	}
	defer publisher.Close()

	jobScheduler := scheduler.NewJobScheduler(client, publisher, logger, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := jobScheduler.Start(ctx); err != nil {
			logger.Error("job scheduler failed", zap.Error(err))
		}
	}()

	logger.Info("ingestion service started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	jobScheduler.Stop()
	logger.Info("shutdown complete")
}
