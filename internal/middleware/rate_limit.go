package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/utils"
	"github.com/vendaflow/pos-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := utils.GetTenantIDFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant ID required for rate limiting"})
			c.Abort()
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = 1000 // requests per minute
		}

		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)
		m.enforce(c, key, limit)
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit)
	}
}

// enforce applies a fixed one-minute window counter. Redis failures let
// the request through; throttling is not worth an outage.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	current, err := m.redis.Get(c.Request.Context(), key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": time.Now().Add(time.Minute).Unix(),
		})
		c.Abort()
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}
