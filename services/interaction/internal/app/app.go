package app

import (
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/queue"
	"blogpost/pkg/server"
	"blogpost/pkg/validation"
	likeHTTP "blogpost/services/interaction/internal/controller/http"
	"blogpost/services/interaction/internal/repo/persistent"
	"blogpost/services/interaction/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/interaction/docs" // Swagger docs
)

const serviceName = "interaction"

// Run wires the interaction service. Both redisClient and queueClient are
// optional: without redis like counts are read straight from the database,
// without rabbitmq no notifications are published.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client, redisClient *redis.Client) error {
	if err := validation.Register(); err != nil {
		return err
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	var publisher queue.Publisher
	if queueClient != nil {
		publisher = queueClient
	}

	likeUseCase := usecase.NewLikeUseCase(
		persistent.NewLikeRepository(db),
		persistent.NewPostRepository(db),
		redisClient,
		publisher,
		log,
	)
	likeHandler := likeHTTP.NewLikeHandler(likeUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, likeHandler)

	closers := []server.Closer{{Name: "database", Close: func() error { return database.Close(db) }}}
	if redisClient != nil {
		closers = append(closers, server.Closer{Name: "redis", Close: redisClient.Close})
	}
	if queueClient != nil {
		closers = append(closers, server.Closer{Name: "rabbitmq", Close: queueClient.Close})
	}
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, likes *likeHTTP.LikeHandler) {
	limit := middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute)

	api := r.Group("/api/v1")
	api.Use(middleware.UUIDParams("id", "post_id"))

	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), limit)
	{
		public.GET("/likes", likes.ListLikes)
		public.GET("/likes/stats/:post_id", likes.GetStats)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService), limit)
	{
		authed.POST("/likes", likes.CreateLike)
		authed.POST("/likes/toggle", likes.ToggleLike)
		authed.DELETE("/likes/:id", likes.DeleteLike)
	}
}
