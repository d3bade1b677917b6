package app

import (
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/s3"
	"blogpost/pkg/server"
	"blogpost/pkg/validation"
	authHTTP "blogpost/services/auth/internal/controller/http"
	"blogpost/services/auth/internal/repo/persistent"
	"blogpost/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/auth/docs" // Swagger docs
)

const serviceName = "auth"

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, storage s3.Uploader, redisClient *redis.Client) error {
	if err := validation.Register(); err != nil {
		return err
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := persistent.NewUserRepository(db)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, storage, log)
	authHandler := authHTTP.NewAuthHandler(authUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, authHandler)

	closers := []server.Closer{{Name: "database", Close: func() error { return database.Close(db) }}}
	if redisClient != nil {
		closers = append(closers, server.Closer{Name: "redis", Close: redisClient.Close})
	}
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, auth *authHTTP.AuthHandler) {
	limit := middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute)

	api := r.Group("/api/v1/auth")

	public := api.Group("")
	public.Use(limit)
	{
		public.POST("/register", auth.Register)
		public.POST("/login", auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService), limit)
	{
		protected.GET("/me", auth.Me)
		protected.PATCH("/me", auth.UpdateMe)
		protected.POST("/avatar", auth.UploadAvatar)
		protected.GET("/providers", auth.ListProviders)
		protected.POST("/providers", auth.LinkProvider)
	}
}
