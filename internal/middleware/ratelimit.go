package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lazygpt/gateway/internal/ratelimit"
	"github.com/lazygpt/gateway/internal/session"
)

// RateLimitBySession enforces the per-minute request ceiling, keyed by
// session. Pro sessions get the higher ceiling; this is separate from the
// free-tier lifetime quota the ledger tracks.
func RateLimitBySession(free, pro ratelimit.Limiter, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := session.FromRequest(c.Request)

		limiter := free
		tier := "free"
		if session.IsPro(key) {
			limiter = pro
			tier = "pro"
		}

		ctx := c.Request.Context()
		allowed, err := limiter.Allow(ctx, key)
		if err != nil {
			logger.Error().Err(err).Str("session_id", key).Msg("rate limit check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Rate limit check failed",
			})
			return
		}

		remaining, _ := limiter.Remaining(ctx, key)
		resetTime, _ := limiter.Reset(ctx, key)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.Limit()))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))
		c.Header("X-RateLimit-Tier", tier)

		if !allowed {
			retryAfter := int(time.Until(resetTime).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}

			logger.Warn().Str("session_id", key).Str("tier", tier).Msg("rate ceiling hit")

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"tier":        tier,
				"limit":       limiter.Limit(),
				"retry_after": resetTime.Unix(),
			})
			return
		}

		c.Next()
	}
}
