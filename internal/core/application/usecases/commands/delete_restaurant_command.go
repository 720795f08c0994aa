package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
		"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
	)
)

// DeleteRestaurantCommand closes a restaurant of the actor together with its
// menu. Orders placed with it are kept.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand deletes the restaurant with its menu.
func NewDeleteRestaurantCommand(actor user.Actor, restaurantID kernel.ID) (DeleteRestaurantCommand, error) {
	if err := errors.Join(actor.Validate(), restaurantID.Validate()); err != nil {
		return DeleteRestaurantCommand{}, err
	}
	return DeleteRestaurantCommand{
		actor:        actor,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) Actor() user.Actor       { return c.actor }
func (c DeleteRestaurantCommand) RestaurantID() kernel.ID { return c.restaurantID }
