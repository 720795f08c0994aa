package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrDeleteDishCommandIsNotConstructed = errors.New(
		"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
	)
)

// DeleteDishCommand removes a dish from the menu. Orders that already
// reference the dish keep their items and total.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	dishID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(actor user.Actor, dishID kernel.ID) (DeleteDishCommand, error) {
	if err := errors.Join(actor.Validate(), dishID.Validate()); err != nil {
		return DeleteDishCommand{}, err
	}
	return DeleteDishCommand{actor: actor, dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) Actor() user.Actor { return c.actor }
func (c DeleteDishCommand) DishID() kernel.ID { return c.dishID }
