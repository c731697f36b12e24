package redis

import (
	"aitoolshub/internal/config"
	"aitoolshub/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	ctx := context.Background()
	if !cfg.Enabled {
		logger.Info(ctx, "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// NewFromRedis wraps an existing go-redis client
func NewFromRedis(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// WindowReserve trims members scored before windowStart, adds member at the given time and
// refreshes the key expiry in one MULTI. The returned count includes member.
func (c *Client) WindowReserve(ctx context.Context, key, member string, at, windowStart time.Time, ttl time.Duration) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrNotInitialized
	}

	var card *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixMilli()))
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(at.UnixMilli()), Member: member})
		card = pipe.ZCard(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reserve window slot: %w", err)
	}
	return card.Val(), nil
}

// WindowRelease removes a member added by WindowReserve
func (c *Client) WindowRelease(ctx context.Context, key, member string) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	if err := c.client.ZRem(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("failed to release window slot: %w", err)
	}
	return nil
}

// OldestScore returns the lowest score in a sorted set
func (c *Client) OldestScore(ctx context.Context, key string) (float64, bool, error) {
	if !c.IsEnabled() {
		return 0, false, ErrNotInitialized
	}

	oldest, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return 0, false, err
	}
	if len(oldest) == 0 {
		return 0, false, nil
	}
	return oldest[0].Score, true, nil
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}
