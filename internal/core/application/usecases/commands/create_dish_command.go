package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand adds a dish to the menu of a restaurant of the actor.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	restaurantID kernel.ID
	name         string
	price        kernel.Price
	photo        string
	description  string
	options      []restaurant.DishOption

	guard guard.ConstructorGuard
}

// NewCreateDishCommand leaves dish validation to the domain.
func NewCreateDishCommand(
	actor user.Actor,
	restaurantID kernel.ID,
	name string,
	price kernel.Price,
	photo, description string,
	options []restaurant.DishOption,
) (CreateDishCommand, error) {
	if err := errors.Join(actor.Validate(), restaurantID.Validate()); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		actor:        actor,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		photo:        photo,
		description:  description,
		options:      append([]restaurant.DishOption(nil), options...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) Actor() user.Actor       { return c.actor }
func (c CreateDishCommand) RestaurantID() kernel.ID { return c.restaurantID }
func (c CreateDishCommand) Name() string            { return c.name }
func (c CreateDishCommand) Price() kernel.Price     { return c.price }
func (c CreateDishCommand) Photo() string           { return c.photo }
func (c CreateDishCommand) Description() string     { return c.description }

func (c CreateDishCommand) Options() []restaurant.DishOption {
	return append([]restaurant.DishOption(nil), c.options...)
}
