package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// CustomRecipeHandler exposes CRUD over user-authored recipes. Reads by id
// and the public listing are open; everything else requires the owner.
type CustomRecipeHandler struct {
	recipes service.ICustomRecipeService
	auth    service.IAuthService
}

// NewCustomRecipeHandler creates a CustomRecipeHandler.
func NewCustomRecipeHandler(recipes service.ICustomRecipeService, auth service.IAuthService) *CustomRecipeHandler {
	return &CustomRecipeHandler{recipes: recipes, auth: auth}
}

// RegisterRoutes registers custom recipe routes.
func (h *CustomRecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/custom-recipes")
	{
		recipes.GET("/public", h.ListPublic)
		recipes.GET("/:id", h.GetByID)

		protected := recipes.Group("", middleware.Auth(h.auth))
		{
			protected.GET("", h.ListMine)
			protected.GET("/search", h.SearchMine)
			protected.POST("", h.Create)
			protected.PUT("/:id", h.Update)
			protected.DELETE("/:id", h.Delete)
		}
	}
}

func (h *CustomRecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err, "failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *CustomRecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		h.writeError(c, err, "failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *CustomRecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.writeError(c, err, "failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *CustomRecipeHandler) GetByID(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *CustomRecipeHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes, err := h.recipes.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *CustomRecipeHandler) SearchMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes, err := h.recipes.Search(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *CustomRecipeHandler) ListPublic(c *gin.Context) {
	recipes, err := h.recipes.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// writeError maps service sentinels onto HTTP statuses. Unauthorized is kept
// distinct from NotFound so the UI can say "not yours" instead of implying
// the recipe never existed.
func (h *CustomRecipeHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this recipe"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
