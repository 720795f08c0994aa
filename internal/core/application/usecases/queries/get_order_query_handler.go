package queries

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
)

// GetOrderQueryHandler returns an order only to its parties.
//
// Example:
//
//	o, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404-like outcome
//	case errors.Is(err, errs.ErrNotAuthorized):
//	    // the order exists but belongs to someone else
//	}
type GetOrderQueryHandler struct {
	orders OrderReader
	policy services.OrderPolicy
}

// NewGetOrderQueryHandler returns single orders to the actors allowed to see them.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: services.NewOrderPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeView(query.Actor(), o); err != nil {
		return nil, err
	}

	return o, nil
}
