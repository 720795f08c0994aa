package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer placing an order at one restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, restaurantID, []services.Selection{
//	    {DishID: pizzaID, Options: []order.ItemOption{{Name: "size"}}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	restaurantID kernel.ID
	selections   []services.Selection

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the actor and the restaurant id.
// An empty selection list is accepted and produces an empty order.
func NewCreateOrderCommand(
	actor user.Actor,
	restaurantID kernel.ID,
	selections []services.Selection,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setSelections(selections),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor       { return c.actor }
func (c CreateOrderCommand) RestaurantID() kernel.ID { return c.restaurantID }

// Selections returns a copy of the requested dishes.
func (c CreateOrderCommand) Selections() []services.Selection {
	return append([]services.Selection(nil), c.selections...)
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []services.Selection) error {
	for _, s := range selections {
		if err := s.DishID.Validate(); err != nil {
			return err
		}
	}
	c.selections = append([]services.Selection(nil), selections...)
	return nil
}
