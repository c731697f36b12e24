package ratelimit

import (
	"aitoolshub/internal/clients/redis"
	"aitoolshub/internal/observability"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	window    = time.Minute
	keyTTL    = 2 * window
	keyPrefix = "rl:track"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Limiter decides whether one more request fits in the key's window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) (RateLimitResult, error)
}

// RedisLimiter is a sliding window limiter on Redis sorted sets.
// Key: rl:track:{scope}:{client_ip}, members are request ids scored by millisecond timestamp.
// A request reserves its slot before it is counted, so concurrent requests cannot overshoot the limit.
type RedisLimiter struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{redis: client, now: time.Now}
}

// Allow implements Limiter
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (RateLimitResult, error) {
	now := l.now()
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())

	count, err := l.redis.WindowReserve(ctx, key, member, now, now.Add(-window), keyTTL)
	if err != nil {
		return RateLimitResult{}, err
	}

	if int(count) > limit {
		if err := l.redis.WindowRelease(ctx, key, member); err != nil {
			return RateLimitResult{}, err
		}
		resetAt := now.Add(window)
		oldest, ok, err := l.redis.OldestScore(ctx, key)
		if err == nil && ok {
			resetAt = time.UnixMilli(int64(oldest)).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count),
		ResetAt:   now.Add(window),
	}, nil
}

// Service rate limits the anonymous tracking endpoints per client IP
type Service struct {
	limiter Limiter
	limit   int
	logger  *observability.Logger
}

// NewService creates a rate limiting service. A nil limiter or a non-positive limit disables limiting.
func NewService(limiter Limiter, limit int, logger *observability.Logger) *Service {
	return &Service{
		limiter: limiter,
		limit:   limit,
		logger:  logger,
	}
}

// Enabled reports whether requests are being limited
func (s *Service) Enabled() bool {
	return s != nil && s.limiter != nil && s.limit > 0
}

// CheckRateLimit records a request from clientIP against scope
func (s *Service) CheckRateLimit(ctx context.Context, scope, clientIP string) (RateLimitResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_scope", Value: scope},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	result, err := s.limiter.Allow(ctx, Key(scope, clientIP), s.limit)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("rate limit check failed: %w", err)
	}
	return result, nil
}

// Key builds the limiter key for a scope and client
func Key(scope, clientIP string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, scope, clientIP)
}
