// Package server builds the gin engine shared by every service and runs it
// until SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// NewRouter returns an engine with CORS, request metrics, /health, /metrics
// and /swagger already mounted.
func NewRouter(cfg *config.Config, service string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.MetricsMiddleware(service))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": service})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Closer releases a dependency on shutdown. Closers run after the HTTP
// server has drained, in the order given.
type Closer struct {
	Name  string
	Close func() error
}

// Run serves handler on cfg.ServerPort and blocks until a termination
// signal, then shuts down gracefully.
func Run(cfg *config.Config, log *logger.Logger, service string, handler http.Handler, closers ...Closer) error {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("%s service starting on port %s", service, cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("Failed to start server: %v", err)
			return err
		}
	case <-quit:
	}
	log.Info("Shutting down %s service...", service)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	if shutdownErr != nil {
		log.Error("Server forced to shutdown: %v", shutdownErr)
	}

	for _, closer := range closers {
		if closer.Close == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			log.Error("Error closing %s: %v", closer.Name, err)
		}
	}

	log.Info("%s service exited", service)
	return shutdownErr
}
