package pubsub

import (
	"context"
	"errors"

	"eats/internal/core/ports"
)

// Fanout publishes every event to several transports, for instance the
// in-process broker and an AMQP exchange. All transports are tried even when
// one fails; the failures are joined.
type Fanout struct {
	publishers []ports.Publisher
}

// NewFanout publishes every event to each of publishers in order. A failing
// publisher does not stop the rest; the errors are joined.
func NewFanout(publishers ...ports.Publisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) Publish(ctx context.Context, topic ports.Topic, payload any) error {
	var errList []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, topic, payload); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
