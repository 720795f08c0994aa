// Package pubsub is the in-process notification transport. It feeds the
// subscription endpoints of the API and never stores an event: subscribers
// receive what is published while they are connected.
package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"eats/internal/core/ports"
)

// DefaultBufferSize is the per-subscriber queue length used by NewBroker when
// a non-positive size is given.
const DefaultBufferSize = 16

var ErrBrokerClosed = errors.New("broker is closed")

type subscription struct {
	events chan ports.Event
}

// Broker fans published events out to the subscribers of their topic.
// A subscriber whose queue is full loses the event; publishers never block.
type Broker struct {
	mu     sync.RWMutex
	subs   map[ports.Topic]map[*subscription]struct{}
	closed bool

	bufferSize int
	logger     *slog.Logger
}

// NewBroker returns an empty broker. Each subscription gets a buffer of
// bufferSize events, DefaultBufferSize when bufferSize is not positive. A
// subscriber whose buffer is full misses the event; the others still get it.
func NewBroker(bufferSize int, logger *slog.Logger) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broker{
		subs:       make(map[ports.Topic]map[*subscription]struct{}),
		bufferSize: bufferSize,
		logger:     logger.With("component", "pubsub_broker"),
	}
}

// Publish delivers payload to every current subscriber of topic.
func (b *Broker) Publish(ctx context.Context, topic ports.Topic, payload any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBrokerClosed
	}

	event := ports.Event{Topic: topic, Payload: payload}
	dropped := 0
	for sub := range b.subs[topic] {
		select {
		case sub.events <- event:
		default:
			dropped++
		}
	}

	if dropped > 0 {
		b.logger.WarnContext(ctx, "Dropped event for slow subscribers",
			"topic", topic,
			"dropped", dropped,
		)
	}
	return nil
}

// Subscribe registers a subscriber for topic. The channel is closed when ctx
// is done or the broker is closed.
func (b *Broker) Subscribe(ctx context.Context, topic ports.Topic) (<-chan ports.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscription{events: make(chan ports.Event, b.bufferSize)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBrokerClosed
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*subscription]struct{})
	}
	b.subs[topic][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(topic, sub)
	}()

	return sub.events, nil
}

// SubscriberCount returns the number of live subscribers of topic.
func (b *Broker) SubscriberCount(topic ports.Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Close ends every subscription. Later Publish and Subscribe calls fail with
// ErrBrokerClosed.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for topic, subs := range b.subs {
		for sub := range subs {
			close(sub.events)
		}
		delete(b.subs, topic)
	}
}

func (b *Broker) unsubscribe(topic ports.Topic, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subs[topic]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.subs, topic)
	}
	close(sub.events)
}
