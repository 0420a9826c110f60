package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/database"
	"github.com/pageza/forkcast/backend/internal/logger"
)

func main() {
	backend := flag.String("backend", "", "Store backend to migrate (defaults to STORE_BACKEND)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.StoreBackend = *backend
		if err := config.ValidateConfig(cfg); err != nil {
			log.Fatalf("Invalid backend: %v", err)
		}
	}
	cfg.AutoMigrate = true

	zl, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// OpenStore runs the migrations because AutoMigrate is forced on.
	st, err := database.OpenStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	if err := st.Close(ctx); err != nil {
		zl.Warn("failed to close store", zap.Error(err))
	}
	zl.Info("migrations applied", zap.String("backend", cfg.StoreBackend))
}
