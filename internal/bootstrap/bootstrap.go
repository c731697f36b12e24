package bootstrap

import (
	"aitoolshub/internal/config"
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"fmt"

	affiliateHandler "aitoolshub/internal/affiliate/handler"
	affiliateProcessor "aitoolshub/internal/affiliate/processor"
	authHandler "aitoolshub/internal/auth/handler"
	authProcessor "aitoolshub/internal/auth/processor"
	catalogHandler "aitoolshub/internal/catalog/handler"
	catalogProcessor "aitoolshub/internal/catalog/processor"
	kafkaClient "aitoolshub/internal/clients/kafka"
	redisClient "aitoolshub/internal/clients/redis"
	"aitoolshub/internal/diagnostics"
	"aitoolshub/internal/events"
	"aitoolshub/internal/ratelimit"
	"aitoolshub/internal/seo"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler        authHandler.Handler
	CatalogHandler     catalogHandler.Handler
	AffiliateHandler   affiliateHandler.Handler
	SEOHandler         seo.Handler
	DiagnosticsHandler diagnostics.Handler

	RateLimiter *ratelimit.Service

	// Infrastructure clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	// Initialize Redis, a connection failure only disables rate limiting
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "Redis unavailable, tracking rate limits disabled", err)
		deps.RedisClient = nil
	}
	var limiter ratelimit.Limiter
	if deps.RedisClient.IsEnabled() {
		limiter = ratelimit.NewRedisLimiter(deps.RedisClient)
	}
	deps.RateLimiter = ratelimit.NewService(limiter, cfg.RateLimit.TrackingRPM, logger)

	// Initialize Kafka producer, no brokers means no event stream
	var publisher affiliateProcessor.EventPublisher
	if brokers := cfg.Kafka.KafkaBrokers(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
			Async:   true,
		}, logger)
		publisher = events.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Info(ctx, "Kafka brokers not configured, affiliate events disabled")
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, authProcessor.AuthConfig{
		JWTSecret:     cfg.Auth.JWTSecret,
		Issuer:        cfg.Auth.Issuer,
		Audience:      cfg.Auth.Audience,
		AutoProvision: cfg.Auth.AdminAutoProvision,
	}, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize catalog processor and handler
	catalogProc := catalogProcessor.New(&deps.Store, logger)
	deps.CatalogHandler = catalogHandler.New(catalogProc, logger)

	// Initialize affiliate processor and handler
	affiliateProc := affiliateProcessor.New(&deps.Store, publisher, logger)
	deps.AffiliateHandler = affiliateHandler.New(affiliateProc, logger)

	// Initialize sitemap and diagnostics
	deps.SEOHandler = seo.NewHandler(seo.New(&deps.Store, cfg.Services.WebAppURI, logger), logger)
	deps.DiagnosticsHandler = diagnostics.New(cfg, &deps.Store, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
