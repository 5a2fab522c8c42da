package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/quota"
	"github.com/platewise/backend/internal/service"
)

// AdminHandler exposes operator endpoints: usage inspection and cache
// clearing.
type AdminHandler struct {
	cache *service.RecipeCache
	quota quota.Tracker
	auth  service.IAuthService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(cache *service.RecipeCache, tracker quota.Tracker, auth service.IAuthService) *AdminHandler {
	return &AdminHandler{cache: cache, quota: tracker, auth: auth}
}

// RegisterRoutes registers the admin routes behind the admin gate.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin", middleware.Auth(h.auth), middleware.AdminOnly())
	{
		admin.GET("/usage", h.GetUsage)
		admin.DELETE("/cache", h.ClearCache)
	}
}

func (h *AdminHandler) GetUsage(c *gin.Context) {
	usage, err := h.quota.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read usage stats"})
		return
	}
	c.JSON(http.StatusOK, usage)
}

func (h *AdminHandler) ClearCache(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}
