package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrEditDishCommandIsNotConstructed = errors.New(
		"EditDishCommand must be created via NewEditDishCommand constructor",
	)
)

// EditDishCommand changes a dish on the menu of a restaurant of the actor.
// Orders already placed keep the items and total they were priced with.
type EditDishCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	dishID  kernel.ID
	changes restaurant.DishChanges

	guard guard.ConstructorGuard
}

// NewEditDishCommand copies the options of changes so later edits by the
// caller do not leak into the command.
func NewEditDishCommand(actor user.Actor, dishID kernel.ID, changes restaurant.DishChanges) (EditDishCommand, error) {
	if err := errors.Join(actor.Validate(), dishID.Validate()); err != nil {
		return EditDishCommand{}, err
	}
	if changes.Options != nil {
		options := append([]restaurant.DishOption(nil), (*changes.Options)...)
		changes.Options = &options
	}
	return EditDishCommand{actor: actor, dishID: dishID, changes: changes, guard: guard.NewConstructorGuard()}, nil
}

func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

func (c EditDishCommand) Actor() user.Actor               { return c.actor }
func (c EditDishCommand) DishID() kernel.ID               { return c.dishID }
func (c EditDishCommand) Changes() restaurant.DishChanges { return c.changes }
