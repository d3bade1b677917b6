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
	commentHTTP "blogpost/services/comment/internal/controller/http"
	"blogpost/services/comment/internal/repo/persistent"
	"blogpost/services/comment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/comment/docs" // Swagger docs
)

const serviceName = "comment"

// Run wires the comment service. queueClient may be nil, in which case no
// notifications are published.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client, redisClient *redis.Client) error {
	if err := validation.Register(); err != nil {
		return err
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	var publisher queue.Publisher
	if queueClient != nil {
		publisher = queueClient
	}

	commentRepo := persistent.NewCommentRepository(db)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, publisher, log)
	commentHandler := commentHTTP.NewCommentHandler(commentUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, commentHandler)

	closers := []server.Closer{{Name: "database", Close: func() error { return database.Close(db) }}}
	if redisClient != nil {
		closers = append(closers, server.Closer{Name: "redis", Close: redisClient.Close})
	}
	if queueClient != nil {
		closers = append(closers, server.Closer{Name: "rabbitmq", Close: queueClient.Close})
	}
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, comments *commentHTTP.CommentHandler) {
	limit := middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute)

	api := r.Group("/api/v1")
	api.Use(middleware.UUIDParams("id"))

	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), limit)
	{
		public.GET("/comments", comments.ListComments)
		public.GET("/comments/:id", comments.GetComment)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService), limit)
	{
		authed.GET("/comments/mine", comments.ListMyComments)
		authed.GET("/comments/pending", comments.ListPendingComments)
		authed.POST("/comments", comments.CreateComment)
		authed.PUT("/comments/:id", comments.UpdateComment)
		authed.PATCH("/comments/:id", comments.UpdateComment)
		authed.DELETE("/comments/:id", comments.DeleteComment)
		authed.POST("/comments/:id/reply", comments.ReplyToComment)
		authed.POST("/comments/:id/approve", comments.ApproveComment)
		authed.POST("/comments/:id/disapprove", comments.DisapproveComment)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService), limit, middleware.RequireRole("admin"))
	{
		admin.GET("/comments", comments.AdminListComments)
	}
}
