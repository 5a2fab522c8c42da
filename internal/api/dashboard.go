package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/quota"
	"github.com/platewise/backend/internal/service"
)

// DashboardHandler serves the profile dashboard summary.
type DashboardHandler struct {
	recipes   service.ICustomRecipeService
	favorites service.IFavoritesService
	plans     *service.MealPlanService
	quota     quota.Tracker
	auth      service.IAuthService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(recipes service.ICustomRecipeService, favorites service.IFavoritesService, plans *service.MealPlanService, tracker quota.Tracker, auth service.IAuthService) *DashboardHandler {
	return &DashboardHandler{recipes: recipes, favorites: favorites, plans: plans, quota: tracker, auth: auth}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard", middleware.Auth(h.auth))
	{
		dashboard.GET("/stats", h.GetStats)
	}
}

// DashboardStats summarizes a user's data for the profile page.
type DashboardStats struct {
	CustomRecipes int               `json:"customRecipes"`
	Favorites     int               `json:"favorites"`
	MealPlans     int               `json:"mealPlans"`
	APIUsage      models.UsageStats `json:"apiUsage"`
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx := c.Request.Context()
	var stats DashboardStats

	if recipes, err := h.recipes.ListByOwner(ctx, userID); err == nil {
		stats.CustomRecipes = len(recipes)
	} else {
		log.Printf("dashboard: listing recipes for %s: %v", userID, err)
	}

	if count, err := h.favorites.Count(ctx, userID); err == nil {
		stats.Favorites = count
	} else {
		log.Printf("dashboard: counting favorites for %s: %v", userID, err)
	}

	if plans, err := h.plans.ListByUser(ctx, userID); err == nil {
		stats.MealPlans = len(plans)
	} else {
		log.Printf("dashboard: listing meal plans for %s: %v", userID, err)
	}

	if usage, err := h.quota.Stats(ctx); err == nil {
		stats.APIUsage = usage
	} else {
		log.Printf("dashboard: reading api usage: %v", err)
	}

	c.JSON(http.StatusOK, stats)
}
