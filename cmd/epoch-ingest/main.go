package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
	"github.com/khaihkd/tomochain-governance/internal/config"
	"github.com/khaihkd/tomochain-governance/internal/ingest"
	"github.com/khaihkd/tomochain-governance/internal/logger"
	"github.com/khaihkd/tomochain-governance/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIngestConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "epoch-ingest",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting epoch ingest consumer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to NATS and create the ingester
	ingester, err := ingest.NewIngester(cfg.NATS, adapter.NewNatsJetStream(), dataStore, adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ingester", zap.Error(err), zap.String("nats_url", cfg.NATS.URL))
	}
	defer ingester.Close()

	// Consume until interrupted
	if err := ingester.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.FatalCtx(ctx, "Ingester stopped", zap.Error(err))
	}

	logger.Info("Epoch ingest consumer stopped")
}
