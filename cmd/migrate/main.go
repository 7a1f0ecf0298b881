package main

import (
	"context"
	"log"

	"github.com/Tanim1993/RelocationJobxyz/common/database"
	"github.com/Tanim1993/RelocationJobxyz/common/database/schema"
	"github.com/Tanim1993/RelocationJobxyz/common/database/schema/migrations"
	"github.com/Tanim1993/RelocationJobxyz/internal/config"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	db, err := database.New(ctx, database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		logger.Fatal("failed to connect to clickhouse", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	migrator := schema.NewMigrator(db.Conn(), logger)

	if err := migrator.CreateMigrationsTable(ctx); err != nil {
		logger.Fatal("failed to create migrations table", zap.Error(err))
	}

	applied, err := migrator.GetAppliedMigrations(ctx)
	if err != nil {
		logger.Fatal("failed to read applied migrations", zap.Error(err))
	}

	all := []schema.Migration{
		migrations.CreateRelocationJobsTable,
		migrations.CreateEmailTemplatesTable,
		migrations.SeedEmailTemplates,
	}

	for _, migration := range all {
		if _, ok := applied[migration.Version]; ok {
			logger.Info("migration already applied",
				zap.Int("version", migration.Version),
				zap.String("description", migration.Description))
			continue
		}

		if err := migrator.ApplyMigration(ctx, migration); err != nil {
			logger.Fatal("migration failed",
				zap.Int("version", migration.Version),
				zap.Error(err))
		}

		logger.Info("applied migration",
			zap.Int("version", migration.Version),
			zap.String("description", migration.Description))
	}

	logger.Info("migrations complete", zap.Int("total", len(all)))
}
