package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware allows limit requests per window for each caller,
// keyed by user id when authenticated and by client IP otherwise. Mount it
// after AuthMiddleware or OptionalAuthMiddleware so the user id is known.
// Counters live in redis so every replica shares them; when redisClient is
// nil or redis fails, an in-process token bucket takes over.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	local := newLocalLimiter(limit, window)

	return func(c *gin.Context) {
		identity := c.GetString(ContextUserID)
		if identity == "" {
			identity = c.ClientIP()
		}

		allowed := false
		if redisClient != nil {
			count, err := incrWindow(c, redisClient, "rate_limit:"+identity, window)
			if err == nil {
				allowed = count <= int64(limit)
				c.Header("X-RateLimit-Limit", fmt.Sprint(limit))
				if remaining := int64(limit) - count; remaining > 0 {
					c.Header("X-RateLimit-Remaining", fmt.Sprint(remaining))
				} else {
					c.Header("X-RateLimit-Remaining", "0")
				}
			} else {
				allowed = local.allow(identity)
			}
		} else {
			allowed = local.allow(identity)
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded", "code": "rate_limited"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// incrWindow counts the request in a fixed window. The TTL is read in the
// same transaction so a key left without one, for instance when a previous
// EXPIRE failed, gets it back on the next request.
func incrWindow(c *gin.Context, redisClient *redis.Client, key string, window time.Duration) (int64, error) {
	ctx := c.Request.Context()

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if ttl.Val() < 0 {
		if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return incr.Val(), nil
}

type localLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	limiters map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &localLimiter{
		limit:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		idle:     3 * window,
		limiters: make(map[string]*visitor),
	}
}

func (l *localLimiter) allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.limiters[identity]
	if !ok {
		l.prune(now)
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[identity] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *localLimiter) prune(now time.Time) {
	for id, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.limiters, id)
		}
	}
}
