package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"anoa.com/lebenslauf/pkg/apperror"
	"anoa.com/lebenslauf/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func rateLimitKey(subject, action string) string {
	return fmt.Sprintf("rate_limit:%s:%s", subject, action)
}

// CheckAndSetRateLimit reports whether the subject may perform the action now
// and, if so, locks it for limit. A nil client never limits.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, subject, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	wasSet, err := rdb.SetNX(ctx, rateLimitKey(subject, action), "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, subject, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	return rdb.TTL(ctx, rateLimitKey(subject, action)).Result()
}

// RateLimit allows one request per client IP and action within limit.
// Redis failures let the request through.
func RateLimit(rdb *redis.Client, action string, limit time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		subject := "ip:" + c.ClientIP()

		allowed, err := CheckAndSetRateLimit(ctx, rdb, subject, action, limit)
		if err != nil {
			log.Warn("rate limit check failed", zap.String("action", action), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			ttl, err := GetRateLimitTTL(ctx, rdb, subject, action)
			if err != nil || ttl <= 0 {
				ttl = limit
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
			response.ResponseError(c, log, apperror.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
