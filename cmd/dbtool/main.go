package main

import (
	"context"
	"time"
	"visa-route-checker/internal/adapters/repositories"
	"visa-route-checker/internal/config"
	"visa-route-checker/internal/platform/db"
	"visa-route-checker/internal/platform/obs"

	"go.uber.org/zap"
)

// dbtool creates the search-history schema ahead of the first server start.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := obs.Init(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")
}
