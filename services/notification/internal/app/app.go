package app

import (
	"context"
	"errors"
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/queue"
	"blogpost/pkg/server"
	"blogpost/pkg/validation"
	notificationHTTP "blogpost/services/notification/internal/controller/http"
	"blogpost/services/notification/internal/repo/persistent"
	"blogpost/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/notification/docs" // Swagger docs
)

const serviceName = "notification"

// Run serves the inbox API and, when queueClient is set, consumes
// notification tasks until shutdown.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client, redisClient *redis.Client) error {
	if err := validation.Register(); err != nil {
		return err
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	notificationUseCase := usecase.NewNotificationUseCase(
		persistent.NewInboxRepository(redisClient, log),
		persistent.NewUserRepository(db),
		log,
	)
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, notificationHandler)

	var closers []server.Closer
	if queueClient != nil {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			log.Info("Starting notification queue consumer...")
			if err := queueClient.Consume(ctx, notificationUseCase.HandleTask); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Notification consumer stopped: %v", err)
			}
		}()
		closers = append(closers,
			server.Closer{Name: "consumer", Close: func() error { cancel(); return nil }},
			server.Closer{Name: "rabbitmq", Close: queueClient.Close},
		)
	}
	closers = append(closers,
		server.Closer{Name: "database", Close: func() error { return database.Close(db) }},
		server.Closer{Name: "redis", Close: redisClient.Close},
	)
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, notifications *notificationHTTP.NotificationHandler) {
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(jwtService), middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute))
	{
		protected.GET("/notifications", notifications.GetNotifications)
		protected.DELETE("/notifications", notifications.ClearNotifications)
	}
}
