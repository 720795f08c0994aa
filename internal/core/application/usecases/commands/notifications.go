package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// notifier publishes after commit. A failed publish is logged and swallowed:
// the state change it reports is already durable.
type notifier struct {
	publisher ports.Publisher
	logger    *slog.Logger
}

func newNotifier(publisher ports.Publisher, logger *slog.Logger, component string) notifier {
	return notifier{
		publisher: publisher,
		logger:    logger.With("component", component),
	}
}

func (n notifier) publish(ctx context.Context, topic ports.Topic, payload any) {
	if err := n.publisher.Publish(ctx, topic, payload); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish notification", "topic", topic, "error", err)
	}
}
