package queries

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
)

// GetOrdersQueryHandler maps the actor role to the party column to filter on:
// customer for Client, driver for Delivery, restaurant owner for Owner.
type GetOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetOrdersQueryHandler lists the orders the actor takes part in.
func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.Actor().ID()
	criteria := ports.OrderCriteria{Status: query.Status()}
	switch query.Actor().Role() {
	case user.Client:
		criteria.CustomerID = &id
	case user.Delivery:
		criteria.DriverID = &id
	case user.Owner:
		criteria.OwnerID = &id
	}

	return h.orders.FindMatching(ctx, criteria)
}
