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
	postHTTP "blogpost/services/post/internal/controller/http"
	"blogpost/services/post/internal/repo/persistent"
	"blogpost/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "blogpost/services/post/docs" // Swagger docs
)

const serviceName = "post"

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, storage s3.Uploader, redisClient *redis.Client) error {
	if err := validation.Register(); err != nil {
		return err
	}

	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	taxonomyRepo := persistent.NewTaxonomyRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, taxonomyRepo, storage, redisClient, log)
	taxonomyUseCase := usecase.NewTaxonomyUseCase(taxonomyRepo, log)

	// Initialize HTTP handlers
	postHandler := postHTTP.NewPostHandler(postUseCase, log)
	taxonomyHandler := postHTTP.NewTaxonomyHandler(taxonomyUseCase, log)

	r := server.NewRouter(cfg, serviceName)
	registerRoutes(r, jwtService, redisClient, cfg.RateLimitPerMinute, postHandler, taxonomyHandler)

	closers := []server.Closer{{Name: "database", Close: func() error { return database.Close(db) }}}
	if redisClient != nil {
		closers = append(closers, server.Closer{Name: "redis", Close: redisClient.Close})
	}
	return server.Run(cfg, log, serviceName, r, closers...)
}

func registerRoutes(r *gin.Engine, jwtService *jwt.Service, redisClient *redis.Client, ratePerMinute int, posts *postHTTP.PostHandler, taxonomy *postHTTP.TaxonomyHandler) {
	limit := middleware.RateLimitMiddleware(redisClient, ratePerMinute, time.Minute)

	api := r.Group("/api/v1")
	api.Use(middleware.UUIDParams("id"))

	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), limit)
	{
		public.GET("/posts", posts.ListPosts)
		public.GET("/posts/:id", posts.GetPost)
		public.GET("/tags", taxonomy.ListTags)
		public.GET("/tags/:id", taxonomy.GetTag)
		public.GET("/categories", taxonomy.ListCategories)
		public.GET("/categories/:id", taxonomy.GetCategory)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService), limit)
	{
		authed.GET("/posts/mine", posts.ListMyPosts)
		authed.POST("/posts", posts.CreatePost)
		authed.PUT("/posts/:id", posts.UpdatePost)
		authed.PATCH("/posts/:id", posts.UpdatePost)
		authed.DELETE("/posts/:id", posts.DeletePost)
		authed.POST("/posts/:id/publish", posts.PublishPost)
		authed.POST("/posts/:id/unpublish", posts.UnpublishPost)
		authed.POST("/posts/:id/image", posts.UploadImage)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService), limit, middleware.RequireRole("admin"))
	{
		admin.GET("/posts", posts.AdminListPosts)
		admin.POST("/tags", taxonomy.CreateTag)
		admin.POST("/categories", taxonomy.CreateCategory)
	}
}
