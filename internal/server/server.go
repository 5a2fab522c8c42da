// Package server assembles the application: store client, remote client,
// quota tracker, services, handlers and the HTTP server itself.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/quota"
	"github.com/platewise/backend/internal/remote"
	"github.com/platewise/backend/internal/router"
	"github.com/platewise/backend/internal/service"
)

// Server is the assembled HTTP server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New wires every component from configuration. When Redis is configured the
// quota counter uses atomic increments there; otherwise it lives in the
// document store's apiUsageStats singleton.
func New(cfg *config.Config) *Server {
	store := datastore.New(cfg.DatastoreURL, cfg.DatastoreTimeout)
	remoteClient := remote.New(cfg.SpoonacularURL, cfg.SpoonacularAPIKey, cfg.DatastoreTimeout)

	var tracker quota.Tracker
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		tracker = quota.NewRedisTracker(client, cfg.DailyAPILimit)
		log.Printf("quota: using redis counter at %s", cfg.RedisAddr)
	} else {
		tracker = quota.NewStoreTracker(store, cfg.DailyAPILimit)
	}

	cache := service.NewRecipeCache(store, cfg.CacheMaxEntries)
	gateway := service.NewGateway(remoteClient, cache, tracker, store)
	authService := service.NewAuthService(store, cfg.JWTSecret)
	recipeService := service.NewCustomRecipeService(store)
	favoritesService := service.NewFavoritesService(store)
	mealPlanService := service.NewMealPlanService(store)

	engine := router.Setup(router.Handlers{
		Auth:          api.NewAuthHandler(authService),
		Recipes:       api.NewRecipeHandler(gateway),
		CustomRecipes: api.NewCustomRecipeHandler(recipeService, authService),
		Favorites:     api.NewFavoritesHandler(favoritesService, authService),
		MealPlans:     api.NewMealPlanHandler(mealPlanService, authService),
		Dashboard:     api.NewDashboardHandler(recipeService, favoritesService, mealPlanService, tracker, authService),
		Admin:         api.NewAdminHandler(cache, tracker, authService),
	}, cfg.CORSOrigins)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: engine,
		},
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
