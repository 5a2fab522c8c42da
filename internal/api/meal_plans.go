package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/service"
)

// MealPlanHandler exposes meal plan CRUD. All routes are protected.
type MealPlanHandler struct {
	plans *service.MealPlanService
	auth  service.IAuthService
}

// NewMealPlanHandler creates a MealPlanHandler.
func NewMealPlanHandler(plans *service.MealPlanService, auth service.IAuthService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, auth: auth}
}

// RegisterRoutes registers the meal plan routes.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans", middleware.Auth(h.auth))
	{
		plans.GET("", h.List)
		plans.POST("", h.Create)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
	}
}

func (h *MealPlanHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plans, err := h.plans.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlans": plans})
}

func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var plan models.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.plans.Create(c.Request.Context(), userID, plan)
	if err != nil {
		h.writeError(c, err, "failed to create meal plan")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mealPlan": stored})
}

func (h *MealPlanHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var plan models.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.plans.Update(c.Request.Context(), c.Param("id"), userID, plan)
	if err != nil {
		h.writeError(c, err, "failed to update meal plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlan": stored})
}

func (h *MealPlanHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.plans.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.writeError(c, err, "failed to delete meal plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

func (h *MealPlanHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this meal plan"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
