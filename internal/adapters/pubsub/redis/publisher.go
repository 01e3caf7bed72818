package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"animal-zoo/internal/domain/zoo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message es el payload publicado en el canal.
type Message struct {
	Type       zoo.NotificationType `json:"type"`
	Category   zoo.Category         `json:"category"`
	Count      uint64               `json:"count,omitempty"`
	Holder     string               `json:"holder,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// Publisher implementa zoo.Publisher con PUBLISH sobre un canal Redis.
type Publisher struct {
	client  redis.UniversalClient
	channel string
}

func NewPublisher(client redis.UniversalClient, channel string) (*Publisher, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return nil, errors.New("redis channel is required")
	}
	return &Publisher{client: client, channel: channel}, nil
}

func (p *Publisher) Publish(ctx context.Context, n zoo.Notification) error {
	b, err := json.Marshal(toMessage(n))
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, b).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func toMessage(n zoo.Notification) Message {
	return Message{
		Type:       n.Type,
		Category:   n.Category,
		Count:      n.Count,
		Holder:     n.Holder,
		OccurredAt: n.OccurredAt,
	}
}

// DecodeMessage decodifica un payload recibido por un suscriptor.
func DecodeMessage(payload string) (Message, error) {
	var m Message
	if err := json.UnmarshalFromString(payload, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
