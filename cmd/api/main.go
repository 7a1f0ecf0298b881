package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tanim1993/RelocationJobxyz/common/database"
	"github.com/Tanim1993/RelocationJobxyz/internal/advisor"
	"github.com/Tanim1993/RelocationJobxyz/internal/config"
	"github.com/Tanim1993/RelocationJobxyz/internal/httpapi"
	"github.com/Tanim1993/RelocationJobxyz/internal/ingest"
	"github.com/Tanim1993/RelocationJobxyz/internal/jsearch"
	"github.com/Tanim1993/RelocationJobxyz/internal/progress"
	"github.com/Tanim1993/RelocationJobxyz/internal/store"
	"github.com/Tanim1993/RelocationJobxyz/internal/track"

	"github.com/ClickHouse/clickhouse-go/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newClickHouseConnection(cfg *config.Config, logger *zap.Logger) (clickhouse.Conn, error) {
	db, err := database.New(context.Background(), database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		return nil, err
	}
	return db.Conn(), nil
}

func newRedisClient(cfg *config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func newIngestService(client jsearch.Client, jobs *store.JobStore, logger *zap.Logger, cfg *config.Config) *ingest.Service {
	return ingest.NewService(client, jobs, logger, cfg.MaxResults)
}

func newReportTracker(client *goredis.Client, logger *zap.Logger, cfg *config.Config) *track.Tracker {
	return track.NewTracker(client, logger, cfg.TrackCapacity)
}

func newCulturalScorer() *advisor.CulturalScorer {
	return advisor.NewCulturalScorer(nil)
}

func newHandler(
	logger *zap.Logger,
	cfg *config.Config,
	jobs *store.JobStore,
	templates *store.TemplateStore,
	searcher *ingest.Service,
	scorer *advisor.CulturalScorer,
	tracker *progress.Tracker,
	reports *track.Tracker,
) *httpapi.Handler {
	return httpapi.NewHandler(logger, jobs, templates, searcher, scorer, tracker, reports, cfg.ListLimit)
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newClickHouseConnection,
			newRedisClient,
			store.NewJobStore,
			store.NewTemplateStore,
			jsearch.NewClient,
			newIngestService,
			newReportTracker,
			newCulturalScorer,
			progress.NewTracker,
			newHandler,
		),
		fx.Invoke(
			func(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Config, handler *httpapi.Handler) {
				router := httpapi.Router(handler, cfg.RequestTimeout)
				server := httpapi.NewServer(logger, router, cfg.BindAddr)
				server.Register(lc)
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
