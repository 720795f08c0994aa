// Package ports defines the contracts between the core and its collaborators:
// storage, transaction boundaries, notification transport and mail delivery.
// Adapters in internal/adapters implement them; use cases depend only on them.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderCriteria narrows FindMatching. Exactly one party field is expected to be set;
// Status is an optional filter.
type OrderCriteria struct {
	CustomerID *kernel.ID
	DriverID   *kernel.ID
	OwnerID    *kernel.ID
	Status     *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items and assigns the
	// generated identities to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and driver of an existing order.
	// Items and total are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and the owner of its restaurant.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// FindMatching lists the orders of one party, newest first.
	//
	// Example:
	//   ownerID := actor.ID()
	//   orders, err := repo.FindMatching(ctx, ports.OrderCriteria{OwnerID: &ownerID})
	FindMatching(ctx context.Context, criteria OrderCriteria) ([]*order.Order, error)
}
