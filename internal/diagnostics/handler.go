package diagnostics

import (
	"context"
	"net/http"
	"os"
	"strings"

	"aitoolshub/internal/config"
	"aitoolshub/internal/observability"

	"github.com/gin-gonic/gin"
)

// probedTables are checked in order by HandleTestDB
var probedTables = []string{"categories", "vendors", "tools"}

// TableProber defines the database operation required by Handler
type TableProber interface {
	ProbeTable(ctx context.Context, table string) error
}

type Handler struct {
	cfg    *config.Config
	prober TableProber
	logger *observability.Logger
}

func New(cfg *config.Config, prober TableProber, logger *observability.Logger) Handler {
	return Handler{cfg: cfg, prober: prober, logger: logger}
}

// EnvCheckResponse reports which settings are present without exposing their values
type EnvCheckResponse struct {
	HasDatabaseHost     bool   `json:"hasDatabaseHost"`
	HasDatabaseUser     bool   `json:"hasDatabaseUser"`
	HasDatabasePassword bool   `json:"hasDatabasePassword"`
	HasAuthSecret       bool   `json:"hasAuthSecret"`
	HasAuthIssuer       bool   `json:"hasAuthIssuer"`
	RedisEnabled        bool   `json:"redisEnabled"`
	KafkaEnabled        bool   `json:"kafkaEnabled"`
	GoEnv               string `json:"goEnv"`
	DatabaseHostLength  int    `json:"databaseHostLength"`
	AuthSecretLength    int    `json:"authSecretLength"`
}

// HandleEnvCheck serves /admin/env-check
func (h *Handler) HandleEnvCheck(c *gin.Context) {
	c.JSON(http.StatusOK, EnvCheckResponse{
		HasDatabaseHost:     h.cfg.Database.Host != "",
		HasDatabaseUser:     h.cfg.Database.Username != "",
		HasDatabasePassword: h.cfg.Database.Password != "",
		HasAuthSecret:       h.cfg.Auth.JWTSecret != "",
		HasAuthIssuer:       h.cfg.Auth.Issuer != "",
		RedisEnabled:        h.cfg.Redis.Enabled,
		KafkaEnabled:        h.cfg.Kafka.Brokers != "",
		GoEnv:               os.Getenv("GO_ENV"),
		DatabaseHostLength:  len(h.cfg.Database.Host),
		AuthSecretLength:    len(h.cfg.Auth.JWTSecret),
	})
}

// HandleTestDB serves /admin/test-db, probing each catalog table
func (h *Handler) HandleTestDB(c *gin.Context) {
	ctx := c.Request.Context()

	for _, table := range probedTables {
		if err := h.prober.ProbeTable(ctx, table); err != nil {
			ctx = observability.WithFields(ctx, observability.Field{Key: "table", Value: table})
			h.logger.Error(ctx, "table probe failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": strings.ToUpper(table[:1]) + table[1:] + " table access failed",
				"code":  "TABLE_ACCESS_FAILED",
				"table": table,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All database tables accessible",
		"tables":  probedTables,
	})
}
