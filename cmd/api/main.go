package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/database"
	"github.com/pageza/forkcast/backend/internal/logger"
	"github.com/pageza/forkcast/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := database.OpenStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			zl.Warn("failed to close store", zap.Error(err))
		}
	}()

	svc, cleanup := server.Wire(ctx, cfg, st, zl)
	defer cleanup()

	srv := server.New(cfg, svc, zl)
	zl.Info("starting server",
		zap.String("addr", cfg.Address()),
		zap.String("environment", string(cfg.Environment)),
		zap.String("store", st.Name()),
	)
	if err := srv.Start(ctx); err != nil {
		zl.Error("server error", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}
