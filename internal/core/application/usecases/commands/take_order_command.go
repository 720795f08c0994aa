package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand is a delivery driver claiming an order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(actor user.Actor, orderID kernel.ID) (TakeOrderCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return TakeOrderCommand{}, err
	}

	return TakeOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c TakeOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
