package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/types"
)

type MealPlanHandler struct {
	planService *service.MealPlanService
	tokens      middleware.TokenValidator
	log         *zap.Logger
	now         func() time.Time
}

func NewMealPlanHandler(planService *service.MealPlanService, tokens middleware.TokenValidator, log *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{planService: planService, tokens: tokens, log: log, now: time.Now}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	plans.Use(middleware.AuthMiddleware(h.tokens))
	{
		plans.GET("", h.GetMealPlan)
		plans.POST("", h.AssignMeal)
		plans.DELETE("", h.RemoveMeal)
	}
}

// GetMealPlan returns the entries between startDate and endDate. Missing
// bounds default to the current week starting today.
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	today := h.now().UTC()
	start := c.DefaultQuery("startDate", today.Format(models.DateLayout))
	end := c.DefaultQuery("endDate", today.AddDate(0, 0, 6).Format(models.DateLayout))
	includeOthers, _ := strconv.ParseBool(c.Query("includeOthers"))

	plan, err := h.planService.Range(c.Request.Context(), middleware.UserID(c), start, end, includeOthers)
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) AssignMeal(c *gin.Context) {
	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	entry, err := h.planService.Assign(c.Request.Context(), middleware.UserID(c), req.Date, models.MealType(req.MealType), req.MealID)
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MealPlanHandler) RemoveMeal(c *gin.Context) {
	var req types.MealPlanSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	deleted, err := h.planService.Remove(c.Request.Context(), middleware.UserID(c), req.Date, models.MealType(req.MealType))
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "message": "Meal plan entry removed"})
}
