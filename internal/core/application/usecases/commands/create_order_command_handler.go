package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// CreateOrderCommandHandler prices and persists a new order, then announces
// it on TopicNewPendingOrder with the restaurant owner id.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Status() == order.Pending
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.OrderPricer
	notifier   notifier
}

// NewCreateOrderCommandHandler publishes a PendingOrderEvent for every stored
// order. Publish failures are logged, never returned.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.Publisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
		notifier:   newNotifier(publisher, logger, "create_order_handler"),
	}
}

// Handle loads the restaurant menu, prices the selections and stores the
// order with its items in one transaction. A selection that references a dish
// outside the menu abandons the whole order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Actor(), user.Client); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	menu, err := uow.DishRepository().FindByRestaurant(ctx, r.ID())
	if err != nil {
		return nil, err
	}

	total, items, err := h.pricer.Price(menu, cmd.Selections())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.Actor().ID(), r.ID(), r.OwnerID(), items, total)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.publish(ctx, ports.TopicNewPendingOrder, ports.PendingOrderEvent{
		Order:   created,
		OwnerID: r.OwnerID(),
	})

	return created, nil
}
