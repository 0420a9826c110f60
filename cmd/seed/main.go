package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/database"
	"github.com/pageza/forkcast/backend/internal/logger"
	"github.com/pageza/forkcast/backend/internal/seed"
	"github.com/pageza/forkcast/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StoreBackend == config.BackendMemory {
		log.Fatal("Seeding the memory store has no lasting effect; set STORE_BACKEND")
	}

	zl, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := database.OpenStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.Error(err))
	}
	defer func() { _ = st.Close(context.Background()) }()

	auth := service.NewAuthService(st.Users(), cfg.JWTSecret, cfg.JWTTTL, zl)
	meals := service.NewMealService(st, nil, zl)

	res, err := seed.Run(ctx, st, auth, meals, zl)
	if err != nil {
		zl.Error("seeding failed", zap.Error(err))
		return
	}
	zl.Info("seed complete",
		zap.String("username", res.User.Username),
		zap.Bool("user_created", res.UserCreated),
		zap.Bool("meal_created", res.MealCreated),
	)
}
