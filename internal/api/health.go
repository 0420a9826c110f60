package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/store"
)

type HealthHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewHealthHandler(st store.Store, log *zap.Logger) *HealthHandler {
	return &HealthHandler{store: st, log: log}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/health/store", h.StoreHealth)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Forkcast API is running",
		"store":   h.store.Name(),
	})
}

// StoreHealth pings the backend and reports record counts.
func (h *HealthHandler) StoreHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("store health check failed", zap.String("store", h.store.Name()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"store":  h.store.Name(),
			"error":  "store unreachable",
		})
		return
	}

	users, err := h.store.Users().Count(ctx, store.Query{})
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	meals, err := h.store.Meals().Count(ctx, store.Query{})
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  h.store.Name(),
		"users":  users,
		"meals":  meals,
	})
}
