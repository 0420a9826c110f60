package server

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/store/memory"
)

func TestWire_WithoutRedis(t *testing.T) {
	cfg := &config.Config{Environment: config.Test, JWTSecret: "s", JWTTTL: time.Hour}

	svc, cleanup := Wire(context.Background(), cfg, memory.New(), zap.NewNop())
	defer cleanup()

	assert.NotNil(t, svc.Auth)
	assert.NotNil(t, svc.Meals)
	assert.NotNil(t, svc.MealPlans)
	assert.Nil(t, svc.Images)
	assert.False(t, svc.Suggestions.Enabled())
	assert.IsType(t, &middleware.LocalLimiter{}, svc.MealCreationLimiter)
	assert.Equal(t, middleware.SuggestionLimit(), svc.SuggestionLimiter.Config())
}

func TestWire_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Environment: config.Test,
		JWTSecret:   "s",
		JWTTTL:      time.Hour,
		RedisHost:   mr.Host(),
		RedisPort:   mr.Port(),
		LLMAPIKey:   "key",
	}

	svc, cleanup := Wire(context.Background(), cfg, memory.New(), zap.NewNop())
	defer cleanup()

	assert.True(t, svc.Suggestions.Enabled())
	assert.IsType(t, &middleware.FallbackLimiter{}, svc.MealCreationLimiter)

	d, err := svc.MealCreationLimiter.Allow(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, middleware.MealCreationLimit().Limit-1, d.Remaining)
}
