package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// FavoritesHandler exposes the favorites ledger. All routes are protected.
type FavoritesHandler struct {
	favorites service.IFavoritesService
	auth      service.IAuthService
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(favorites service.IFavoritesService, auth service.IAuthService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, auth: auth}
}

// RegisterRoutes registers the favorites routes.
func (h *FavoritesHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites", middleware.Auth(h.auth))
	{
		favorites.GET("", h.List)
		favorites.GET("/count", h.Count)
		favorites.GET("/:recipeId", h.Status)
		favorites.POST("/toggle", h.Toggle)
		favorites.DELETE("/:recipeId", h.Remove)
	}
}

func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	favorites, err := h.favorites.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoritesHandler) Count(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	count, err := h.favorites.Count(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *FavoritesHandler) Status(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	favorite, err := h.favorites.IsFavorited(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorite != nil, "favorite": favorite})
}

func (h *FavoritesHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.favorites.Toggle(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	result, err := h.favorites.Remove(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, result)
}
