package main

import (
	"blogpost/pkg/cache"
	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/logger"
	"blogpost/services/analytics/internal/app"
)

// @title           Analytics Service API
// @version         1.0
// @description     Post and engagement statistics for authors on the blogpost platform

// @host      localhost:8006
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if !cfg.HasCustomJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limits are kept per process: %v", err)
		redisClient = nil
	}

	if err := app.Run(cfg, log, db, redisClient); err != nil {
		log.Error("Analytics service stopped: %v", err)
		panic(err)
	}
}
