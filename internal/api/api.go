package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/store"
)

// Services is everything the HTTP layer depends on. Images may be nil when
// uploads are not configured; the limiters may be nil to disable limiting.
type Services struct {
	Store       store.Store
	Auth        *service.AuthService
	Meals       *service.MealService
	MealPlans   *service.MealPlanService
	Suggestions *service.SuggestionService
	Images      *service.ImageService

	MealCreationLimiter middleware.Limiter
	SuggestionLimiter   middleware.Limiter
}

// SetupAPI mounts the health probe at the root and every endpoint under /api.
func SetupAPI(router *gin.Engine, svc Services, log *zap.Logger) {
	health := NewHealthHandler(svc.Store, log)
	router.GET("/health", health.Health)

	api := router.Group("/api")
	{
		health.RegisterRoutes(api)
		NewAuthHandler(svc.Auth, log).RegisterRoutes(api)
		NewMealHandler(svc.Meals, svc.Auth, limit(svc.MealCreationLimiter, log), log).RegisterRoutes(api)
		NewMealPlanHandler(svc.MealPlans, svc.Auth, log).RegisterRoutes(api)
		NewSuggestionHandler(svc.Suggestions, svc.Auth, limit(svc.SuggestionLimiter, log), log).RegisterRoutes(api)
		NewUploadHandler(svc.Images, svc.Auth, log).RegisterRoutes(api)
	}
}

func limit(l middleware.Limiter, log *zap.Logger) gin.HandlerFunc {
	if l == nil {
		return nil
	}
	return middleware.RateLimit(l, log)
}
