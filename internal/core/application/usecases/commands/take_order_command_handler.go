package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
)

// TakeOrderCommandHandler assigns the calling driver to an order that has none.
//
// Any Delivery actor may claim any unclaimed order. The driver check is a
// read followed by a write in the same transaction, without row locking, so
// two concurrent claims may both succeed at the storage layer.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   notifier
}

// NewTakeOrderCommandHandler publishes the taken order on the order updates
// topic. Publish failures are logged, never returned.
func NewTakeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.Publisher,
	logger *slog.Logger,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newNotifier(publisher, logger, "take_order_handler"),
	}
}

// Handle returns a ConflictError when the order already has a driver.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Actor(), user.Delivery); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AssignDriver(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.publish(ctx, ports.TopicOrderUpdate, o)

	return o, nil
}
