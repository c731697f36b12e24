package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Services  ServicesConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds settings for validating tokens minted by the external auth provider
type AuthConfig struct {
	JWTSecret          string
	Issuer             string
	Audience           string
	AdminAutoProvision bool
}

// ServicesConfig holds settings for collaborating services
type ServicesConfig struct {
	WebAppURI string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// RateLimitConfig holds limits for the anonymous tracking endpoints
type RateLimitConfig struct {
	TrackingRPM int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("AUTH_JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = os.Getenv("AUTH_JWT_ISSUER")
	cfg.Auth.Audience = getEnvWithDefault("AUTH_JWT_AUDIENCE", "authenticated")
	cfg.Auth.AdminAutoProvision, err = strconv.ParseBool(getEnvWithDefault("ADMIN_AUTO_PROVISION", "true"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ADMIN_AUTO_PROVISION: %w", err)
	}

	cfg.Services.WebAppURI = strings.TrimRight(getEnvWithDefault("WEBAPP_URI", "https://aitoolshub.com"), "/")

	// Redis configuration
	cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration, empty brokers disables event publishing
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "affiliate-events")

	cfg.RateLimit.TrackingRPM, err = strconv.Atoi(getEnvWithDefault("TRACKING_RATE_LIMIT_RPM", "120"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TRACKING_RATE_LIMIT_RPM: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// KafkaBrokers splits the comma separated broker list
func (c *KafkaConfig) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
