package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// EditOrderCommandHandler applies a role-gated status change.
//
// Notifications, in this order, after commit:
//   - TopicNewCookedOrder when an Owner set Cooked
//   - TopicOrderUpdate for every successful change
//
// Example:
//
//	cmd, _ := NewEditOrderCommand(owner, orderID, order.Cooked)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, services.ErrStatusNotAllowedForRole):
//	    // role may not request this status
//	case errors.Is(err, errs.ErrNotAuthorized):
//	    // actor is not a party of the order
//	}
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
	notifier   notifier
}

// NewEditOrderCommandHandler publishes every accepted change on the order
// updates topic, and cooked orders on the cooked topic as well. Publish
// failures are logged, never returned.
func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.Publisher,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		notifier:   newNotifier(publisher, logger, "edit_order_handler"),
	}
}

// Handle returns the order as persisted. Nothing is written or published on
// the rejected paths.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
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

	if err = h.policy.AuthorizeTransition(cmd.Actor(), o, cmd.Status()); err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cmd.Actor().Is(user.Owner) && o.Status() == order.Cooked {
		h.notifier.publish(ctx, ports.TopicNewCookedOrder, o)
	}
	h.notifier.publish(ctx, ports.TopicOrderUpdate, o)

	return o, nil
}
