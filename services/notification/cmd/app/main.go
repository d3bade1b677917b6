package main

import (
	"blogpost/pkg/cache"
	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/logger"
	"blogpost/pkg/queue"
	"blogpost/services/notification/internal/app"
)

// @title           Notification Service API
// @version         1.0
// @description     Inbox of like, comment and reply notifications for the blogpost platform

// @host      localhost:8005
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

	// Inboxes live in redis, so it is required here.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, serving inboxes without consuming tasks: %v", err)
		queueClient = nil
	}

	if err := app.Run(cfg, log, db, queueClient, redisClient); err != nil {
		log.Error("Notification service stopped: %v", err)
		panic(err)
	}
}
