package mw

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = time.Second
)

// RateLimit is a fixed one-second window per client IP, shared through Redis.
// A Redis failure lets the request through. A counter must never outlive its
// window: a failed EXPIRE drops the key, and a blocked key found without a TTL
// gets one.
func RateLimit(rdb *redis.Client, limitPerSec int, logger *zap.Logger) gin.HandlerFunc {
	limit := strconv.Itoa(limitPerSec)
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
				logger.Warn("rate limit expire failed", zap.String("key", key), zap.Error(err))
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		c.Header("X-RateLimit-Limit", limit)
		if count > int64(limitPerSec) {
			if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl == -1 {
				rdb.Expire(ctx, key, rateLimitWindow)
			}
			c.Header("Retry-After", "1")
			resp.Abort(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
