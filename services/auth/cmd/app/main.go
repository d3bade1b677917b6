package main

import (
	"blogpost/pkg/cache"
	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/logger"
	"blogpost/pkg/s3"
	"blogpost/services/auth/internal/app"
)

// @title           Auth Service API
// @version         1.0
// @description     Registration, login, profiles and linked accounts for the blogpost platform

// @host      localhost:8001
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

	// Redis is optional for auth service
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting falls back to in-process: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := app.Run(cfg, log, db, s3Client, redisClient); err != nil {
		log.Error("Auth service stopped: %v", err)
		panic(err)
	}
}
