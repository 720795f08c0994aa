package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
)

// EditOrderCommand requests a status change of one order.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand validates the inputs only. Whether the actor may set
// status is decided by the handler against the stored order.
func NewEditOrderCommand(actor user.Actor, orderID kernel.ID, status order.Status) (EditOrderCommand, error) {
	cmd := EditOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return EditOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.status = status
	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c EditOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c EditOrderCommand) Status() order.Status {
	return c.status
}
