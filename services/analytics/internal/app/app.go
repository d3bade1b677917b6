package app

import (
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/server"
	analyticsHTTP "blogpost/services/analytics/internal/controller/http"
	"blogpost/services/analytics/internal/repo/persistent"
	"blogpost/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/analytics/docs" // Swagger docs
)

const serviceName = "analytics"

// Run wires the analytics service. redisClient only backs the rate limiter
// and may be nil.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) error {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	analyticsUseCase := usecase.NewAnalyticsUseCase(persistent.NewStatsRepository(db), log)
	analyticsHandler := analyticsHTTP.NewAnalyticsHandler(analyticsUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, analyticsHandler)

	closers := []server.Closer{{Name: "database", Close: func() error { return database.Close(db) }}}
	if redisClient != nil {
		closers = append(closers, server.Closer{Name: "redis", Close: redisClient.Close})
	}
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, analytics *analyticsHTTP.AnalyticsHandler) {
	api := r.Group("/api/v1/analytics")
	api.Use(
		middleware.UUIDParams("post_id"),
		middleware.AuthMiddleware(jwtService),
		middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute),
	)
	{
		api.GET("/me", analytics.GetMyStats)
		api.GET("/posts/:post_id", analytics.GetPostStats)
	}
}
