package ratelimit

import (
	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/observability"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP within scope. Limiter failures let the request through.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		clientIP := observability.GetRealClientIP(c)
		ctx = observability.WithFields(ctx, observability.Field{Key: "client_ip", Value: clientIP})

		result, err := s.CheckRateLimit(ctx, scope, clientIP)
		if err != nil {
			s.logger.WarnWithError(ctx, "rate limiter unavailable, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			apierrors.TooManyRequests(c, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}
