package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogpost/pkg/metrics"
)

// MetricsMiddleware records request count and latency per route template,
// so /posts/:id is one series regardless of the id.
func MetricsMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(service, method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(service, method, route).Observe(time.Since(start).Seconds())
	}
}
