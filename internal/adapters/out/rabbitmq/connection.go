package rabbitmq

import (
	"errors"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// Connection owns the AMQP connection and the channel used for publishing.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Dial connects to url and declares exchange as a durable fanout exchange.
func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp091.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare %s exchange: %w", exchange, err)
	}

	return &Connection{conn: conn, channel: ch}, nil
}

// Channel returns the publishing channel.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

func (c *Connection) Close() error {
	var chErr error
	if c.channel != nil {
		chErr = c.channel.Close()
	}
	return errors.Join(chErr, c.conn.Close())
}
