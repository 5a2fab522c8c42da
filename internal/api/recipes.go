package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/remote"
	"github.com/platewise/backend/internal/service"
)

// RecipeHandler exposes the recipe discovery operations backed by the
// gateway. Misses and remote unavailability are never errors here: responses
// always carry a source marker and possibly empty data, and the UI decides
// the messaging.
type RecipeHandler struct {
	gateway service.IGateway
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(gateway service.IGateway) *RecipeHandler {
	return &RecipeHandler{gateway: gateway}
}

// RegisterRoutes registers the public discovery routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/random", h.Random)
		recipes.GET("/daily", h.Daily)
		recipes.GET("/search", h.Search)
		recipes.GET("/advanced-search", h.AdvancedSearch)
		recipes.GET("/:id", h.GetByID)
	}
}

func (h *RecipeHandler) Random(c *gin.Context) {
	recipe, source := h.gateway.RandomRecipe(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"recipe": recipe, "source": source})
}

func (h *RecipeHandler) Daily(c *gin.Context) {
	recipe, source := h.gateway.DailyRecipe(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"recipe": recipe, "source": source})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	number, _ := strconv.Atoi(c.DefaultQuery("number", "12"))

	results, source := h.gateway.SearchRecipes(c.Request.Context(), query, number)
	c.JSON(http.StatusOK, gin.H{"results": results, "source": source})
}

func (h *RecipeHandler) AdvancedSearch(c *gin.Context) {
	filters := remote.SearchFilters{
		Query:              c.Query("query"),
		Diet:               c.Query("diet"),
		Intolerances:       c.Query("intolerances"),
		IncludeIngredients: c.Query("includeIngredients"),
		ExcludeIngredients: c.Query("excludeIngredients"),
	}
	filters.MaxReadyTime, _ = strconv.Atoi(c.Query("maxReadyTime"))
	filters.MinCalories, _ = strconv.Atoi(c.Query("minCalories"))
	filters.MaxCalories, _ = strconv.Atoi(c.Query("maxCalories"))
	filters.Number, _ = strconv.Atoi(c.DefaultQuery("number", "12"))

	results, source := h.gateway.AdvancedSearch(c.Request.Context(), filters)
	c.JSON(http.StatusOK, gin.H{"results": results, "source": source})
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, source := h.gateway.GetRecipeByID(c.Request.Context(), id)
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe, "source": source})
}
