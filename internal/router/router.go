package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/api"
)

// Handlers collects every route-registering handler the router wires up.
type Handlers struct {
	Auth          *api.AuthHandler
	Recipes       *api.RecipeHandler
	CustomRecipes *api.CustomRecipeHandler
	Favorites     *api.FavoritesHandler
	MealPlans     *api.MealPlanHandler
	Dashboard     *api.DashboardHandler
	Admin         *api.AdminHandler
}

// Setup configures the application routes under /api/v1.
func Setup(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.Recipes.RegisterRoutes(v1)
	h.CustomRecipes.RegisterRoutes(v1)
	h.Favorites.RegisterRoutes(v1)
	h.MealPlans.RegisterRoutes(v1)
	h.Dashboard.RegisterRoutes(v1)
	h.Admin.RegisterRoutes(v1)

	return router
}
