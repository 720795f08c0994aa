package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrEditRestaurantCommandIsNotConstructed = errors.New(
		"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
	)
)

// EditRestaurantCommand changes the details of a restaurant of the actor.
// Nil fields are left as they are. A blank category name keeps the category.
type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	restaurantID kernel.ID
	name         *string
	address      *string
	coverImage   *string
	categoryName string

	guard guard.ConstructorGuard
}

// NewEditRestaurantCommand edits only the fields that are not nil. A blank
// categoryName keeps the current category.
func NewEditRestaurantCommand(
	actor user.Actor,
	restaurantID kernel.ID,
	name, address, coverImage, categoryName *string,
) (EditRestaurantCommand, error) {
	if err := errors.Join(actor.Validate(), restaurantID.Validate()); err != nil {
		return EditRestaurantCommand{}, err
	}

	cmd := EditRestaurantCommand{
		actor:        actor,
		restaurantID: restaurantID,
		name:         name,
		address:      address,
		coverImage:   coverImage,
		guard:        guard.NewConstructorGuard(),
	}
	if categoryName != nil {
		cmd.categoryName = strings.TrimSpace(*categoryName)
	}
	return cmd, nil
}

func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

func (c EditRestaurantCommand) Actor() user.Actor       { return c.actor }
func (c EditRestaurantCommand) RestaurantID() kernel.ID { return c.restaurantID }
func (c EditRestaurantCommand) CategoryName() string    { return c.categoryName }

// Changes returns the field changes without the category, which is resolved
// by name inside the transaction.
func (c EditRestaurantCommand) Changes() restaurant.RestaurantChanges {
	return restaurant.RestaurantChanges{
		Name:       c.name,
		Address:    c.address,
		CoverImage: c.coverImage,
	}
}
