package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/types"
)

type SuggestionHandler struct {
	suggestions *service.SuggestionService
	tokens      middleware.TokenValidator
	limit       gin.HandlerFunc
	log         *zap.Logger
}

func NewSuggestionHandler(suggestions *service.SuggestionService, tokens middleware.TokenValidator, limit gin.HandlerFunc, log *zap.Logger) *SuggestionHandler {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	return &SuggestionHandler{suggestions: suggestions, tokens: tokens, limit: limit, log: log}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/meal-suggestions", middleware.AuthMiddleware(h.tokens), h.limit, h.Suggest)
}

func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req types.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	resp, err := h.suggestions.Suggest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
