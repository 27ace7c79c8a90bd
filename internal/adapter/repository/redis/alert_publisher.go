package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// AlertEnvelope is the message published on the alert channel.
type AlertEnvelope struct {
	Subject string          `json:"subject"`
	Message json.RawMessage `json:"message"`
}

// AlertPublisher implements usecase.Publisher with Redis pub/sub.
type AlertPublisher struct {
	client  redis.Cmdable
	channel string
}

// NewAlertPublisher creates a new AlertPublisher.
func NewAlertPublisher(client redis.Cmdable, channel string) *AlertPublisher {
	return &AlertPublisher{
		client:  client,
		channel: channel,
	}
}

// Publish sends the message to every subscriber of the channel.
func (p *AlertPublisher) Publish(ctx context.Context, subject string, message []byte) error {
	envelope, err := json.Marshal(AlertEnvelope{Subject: subject, Message: message})
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, envelope).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}

	return nil
}
