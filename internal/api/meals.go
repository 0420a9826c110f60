package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/middleware"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/types"
)

const (
	mealNotFound      = "Meal not found"
	mealNotFoundOrNot = "Meal not found or unauthorized"
)

type MealHandler struct {
	mealService *service.MealService
	tokens      middleware.TokenValidator
	createLimit gin.HandlerFunc
	log         *zap.Logger
}

// NewMealHandler builds the meal routes. createLimit guards meal creation
// and copying; nil disables it.
func NewMealHandler(mealService *service.MealService, tokens middleware.TokenValidator, createLimit gin.HandlerFunc, log *zap.Logger) *MealHandler {
	if createLimit == nil {
		createLimit = func(c *gin.Context) { c.Next() }
	}
	return &MealHandler{
		mealService: mealService,
		tokens:      tokens,
		createLimit: createLimit,
		log:         log,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.tokens)

	meals := router.Group("/meals")
	{
		meals.GET("", middleware.OptionalAuth(h.tokens), h.ListMeals)
		meals.GET("/:id", middleware.OptionalAuth(h.tokens), h.GetMeal)
		meals.POST("", auth, h.createLimit, h.CreateMeal)
		meals.PUT("/:id", auth, h.UpdateMeal)
		meals.DELETE("/:id", auth, h.DeleteMeal)
		meals.POST("/:id/copy", auth, h.createLimit, h.CopyMeal)
	}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	params := service.ListMealsParams{
		UserID: c.Query("userId"),
		Search: c.Query("search"),
		Skip:   queryInt(c, "skip", 0),
		Limit:  queryInt(c, "limit", service.DefaultMealPageSize),
	}

	meals, err := h.mealService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, err := h.mealService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	meal, err := h.mealService.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	var req types.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	meal, err := h.mealService.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, h.log, err, mealNotFoundOrNot)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	if err := h.mealService.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		respondError(c, h.log, err, mealNotFoundOrNot)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

func (h *MealHandler) CopyMeal(c *gin.Context) {
	meal, err := h.mealService.Copy(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err, mealNotFound)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// queryInt reads a non-negative integer query parameter, falling back to def
// when it is absent or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
