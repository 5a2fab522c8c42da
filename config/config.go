// Package config loads service configuration from the environment, with a
// local .env file honored in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	CORSOrigins []string

	// Document store
	DatastoreURL     string
	DatastoreTimeout time.Duration

	// Remote recipe API
	SpoonacularURL    string
	SpoonacularAPIKey string
	DailyAPILimit     int

	// Recipe cache
	CacheMaxEntries int

	// Sessions
	JWTSecret string

	// Optional Redis quota counter
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	// Missing .env is fine outside development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatastoreURL:      getEnv("DATASTORE_URL", "http://localhost:3001"),
		SpoonacularURL:    getEnv("SPOONACULAR_URL", "https://api.spoonacular.com/recipes"),
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.DatastoreTimeout, err = time.ParseDuration(getEnv("DATASTORE_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid DATASTORE_TIMEOUT: %w", err)
	}
	if cfg.DailyAPILimit, err = strconv.Atoi(getEnv("DAILY_API_LIMIT", "150")); err != nil {
		return nil, fmt.Errorf("invalid DAILY_API_LIMIT: %w", err)
	}
	if cfg.CacheMaxEntries, err = strconv.Atoi(getEnv("CACHE_MAX_ENTRIES", "500")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_MAX_ENTRIES: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DatastoreURL == "" {
		return fmt.Errorf("DATASTORE_URL is required")
	}
	if c.DailyAPILimit <= 0 {
		return fmt.Errorf("DAILY_API_LIMIT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
