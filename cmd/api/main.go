package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khaihkd/tomochain-governance/internal/adapter"
	"github.com/khaihkd/tomochain-governance/internal/api/middleware"
	"github.com/khaihkd/tomochain-governance/internal/api/server"
	"github.com/khaihkd/tomochain-governance/internal/challenge"
	"github.com/khaihkd/tomochain-governance/internal/config"
	"github.com/khaihkd/tomochain-governance/internal/history"
	"github.com/khaihkd/tomochain-governance/internal/logger"
	"github.com/khaihkd/tomochain-governance/internal/providers/tomochain"
	"github.com/khaihkd/tomochain-governance/internal/rewards"
	"github.com/khaihkd/tomochain-governance/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const historyWorkers = 10

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting TomoChain governance API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Reward engine client and per-epoch reward resolver
	rewardPool, ok := new(big.Int).SetString(cfg.Blockchain.EpochRewardPool, 10)
	if !ok {
		logger.FatalCtx(ctx, "Invalid epoch reward pool",
			zap.String("epoch_reward_pool", cfg.Blockchain.EpochRewardPool))
	}
	rewardClient := rewards.NewClient(adapter.NewHTTPClient(cfg.RewardEngine.Timeout), cfg.RewardEngine.URL)
	resolver := rewards.NewResolver(rewardClient, rewardPool)
	historyService := history.NewService(dataStore, resolver, historyWorkers)

	// Ownership challenge protocol
	protocol := challenge.NewProtocol(dataStore, adapter.NewClock(), cfg.Server.BaseURL)

	// Connect to the chain RPC
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Blockchain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain RPC",
			zap.Error(err),
			zap.String("rpc_url", cfg.Blockchain.RPCURL))
	}
	defer ethClient.Close()
	chainClient, err := tomochain.NewClient(ethClient, cfg.Blockchain.EpochBlocks)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to chain RPC", zap.String("rpc_url", cfg.Blockchain.RPCURL))

	// Create server config
	serverConfig := server.Config{
		Debug:           cfg.Debug,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		EpochRewardPool: cfg.Blockchain.EpochRewardPool,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, historyService, protocol, chainClient)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
