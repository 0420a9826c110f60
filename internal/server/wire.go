package server

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/api"
	"github.com/pageza/forkcast/backend/internal/database"
	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/store"
)

// Wire builds the services on top of an open store. Redis and S3 are
// optional: without Redis, rate limiting is in-process and suggestions are
// not cached; without S3, uploads answer 503. The returned func releases
// the Redis connection.
func Wire(ctx context.Context, cfg *config.Config, st store.Store, log *zap.Logger) (api.Services, func()) {
	var cache *redis.Client
	if database.RedisConfigured(cfg) {
		client, err := database.NewRedisClient(cfg, log)
		if err != nil {
			log.Warn("redis unavailable, using in-process rate limiting", zap.Error(err))
		} else {
			cache = client
		}
	}

	svc := api.Services{
		Store:     st,
		Auth:      service.NewAuthService(st.Users(), cfg.JWTSecret, cfg.JWTTTL, log),
		MealPlans: service.NewMealPlanService(st, log),
		Suggestions: service.NewSuggestionService(service.SuggestionConfig{
			APIKey: cfg.LLMAPIKey,
			APIURL: cfg.LLMAPIURL,
			Model:  cfg.LLMModel,
		}, cache, log),
		MealCreationLimiter: limiter(middleware.MealCreationLimit(), cache, log),
		SuggestionLimiter:   limiter(middleware.SuggestionLimit(), cache, log),
	}

	if cfg.S3BucketName != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Warn("image uploads disabled", zap.Error(err))
		} else {
			svc.Images = service.NewImageService(s3cfg.Client, s3cfg.BucketName, s3cfg.PublicBaseURL, log)
		}
	}

	// A nil *ImageService must not reach the interface as a typed nil.
	if svc.Images != nil {
		svc.Meals = service.NewMealService(st, svc.Images, log)
	} else {
		svc.Meals = service.NewMealService(st, nil, log)
	}

	if !svc.Suggestions.Enabled() {
		log.Warn("LLM_API_KEY not set, meal suggestions disabled")
	}

	cleanup := func() {
		if cache != nil {
			_ = cache.Close()
		}
	}
	return svc, cleanup
}

func limiter(cfg middleware.RateLimitConfig, cache *redis.Client, log *zap.Logger) middleware.Limiter {
	local := middleware.NewLocalLimiter(cfg)
	if cache == nil {
		return local
	}
	return middleware.NewFallbackLimiter(middleware.NewRedisLimiter(cache, cfg), local, log)
}
