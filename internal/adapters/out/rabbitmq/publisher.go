// Package rabbitmq publishes order notifications to a fanout exchange so that
// other processes can follow them.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eats/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var ErrUnsupportedPayload = errors.New("unsupported notification payload")

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Publisher implements ports.Publisher on top of an AMQP channel. The topic
// is used as routing key and message type.
type Publisher struct {
	ch       channel
	exchange string
	logger   *slog.Logger
	now      func() time.Time
}

// NewPublisher publishes events as transient JSON messages to exchange,
// routed by topic.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
		now:      time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, topic ports.Topic, payload any) error {
	msg, err := toMessage(topic, payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, string(topic), false, false, amqp091.Publishing{
		ContentType:  "application/json",
		Type:         string(topic),
		DeliveryMode: amqp091.Transient,
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message to exchange %s: %w", p.exchange, err)
	}

	p.logger.DebugContext(ctx, "Published message",
		"exchange", p.exchange,
		"topic", topic,
		"size", len(body),
	)
	return nil
}
