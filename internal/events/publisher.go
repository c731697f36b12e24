package events

import (
	"aitoolshub/internal/clients/kafka"
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeClickRecorded      = "affiliate.click.recorded"
	TypeConversionRecorded = "affiliate.conversion.recorded"
)

// EventProducer is the Kafka producer operation used by Publisher
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing affiliate domain events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Publisher) event(eventType string, toolID uuid.UUID, data map[string]interface{}) kafka.EventMessage {
	return kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		ToolID:    toolID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
}

// PublishClickRecorded publishes an affiliate.click.recorded event
func (p *Publisher) PublishClickRecorded(ctx context.Context, click store.AffiliateClick) error {
	data := map[string]interface{}{
		"click_id":   click.ID.String(),
		"tool_id":    click.ToolID.String(),
		"session_id": click.SessionID,
		"clicked_at": click.ClickedAt.UTC().Format(time.RFC3339),
	}
	setIfPresent(data, "referrer", click.Referrer)
	setIfPresent(data, "utm_source", click.UTMSource)
	setIfPresent(data, "utm_medium", click.UTMMedium)
	setIfPresent(data, "utm_campaign", click.UTMCampaign)
	setIfPresent(data, "device", click.Device)
	setIfPresent(data, "browser", click.Browser)
	setIfPresent(data, "os", click.OS)

	return p.producer.PublishEvent(ctx, p.event(TypeClickRecorded, click.ToolID, data))
}

// PublishConversionRecorded publishes an affiliate.conversion.recorded event
func (p *Publisher) PublishConversionRecorded(ctx context.Context, conversion store.AffiliateConversion) error {
	data := map[string]interface{}{
		"conversion_id":     conversion.ID.String(),
		"click_id":          conversion.ClickID.String(),
		"tool_id":           conversion.ToolID.String(),
		"session_id":        conversion.SessionID,
		"conversion_type":   conversion.ConversionType,
		"commission_amount": conversion.CommissionAmount,
		"converted_at":      conversion.ConvertedAt.UTC().Format(time.RFC3339),
	}
	if conversion.ConversionValue != nil {
		data["conversion_value"] = *conversion.ConversionValue
	}

	return p.producer.PublishEvent(ctx, p.event(TypeConversionRecorded, conversion.ToolID, data))
}

func setIfPresent(data map[string]interface{}, key string, value *string) {
	if value != nil && *value != "" {
		data[key] = *value
	}
}
