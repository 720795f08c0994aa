package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Topic names a notification stream.
type Topic string

const (
	// TopicNewPendingOrder carries a PendingOrderEvent for every created order.
	TopicNewPendingOrder Topic = "new_pending_order"
	// TopicNewCookedOrder carries the *order.Order an owner marked as Cooked.
	TopicNewCookedOrder Topic = "new_cooked_order"
	// TopicOrderUpdate carries the *order.Order after any status change or driver assignment.
	TopicOrderUpdate Topic = "order_update"
)

// PendingOrderEvent is the payload of TopicNewPendingOrder. OwnerID lets
// subscribers keep only the orders of their own restaurants.
type PendingOrderEvent struct {
	Order   *order.Order
	OwnerID kernel.ID
}

// Event is one published notification.
type Event struct {
	Topic   Topic
	Payload any
}

// Publisher is the notification transport. Delivery is at most once:
// nothing is retried or stored for subscribers that connect later.
type Publisher interface {
	Publish(ctx context.Context, topic Topic, payload any) error
}

// Subscriber streams events of one topic until ctx is done.
// The returned channel is closed when the subscription ends.
type Subscriber interface {
	Subscribe(ctx context.Context, topic Topic) (<-chan Event, error)
}
