package commands

import (
	"context"

	"eats/internal/core/domain/model/user"
)

type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler that deletes restaurants
// on behalf of their owner.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireRole(cmd.Actor(), user.Owner); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants := uow.RestaurantRepository()
	r, err := restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return err
	}

	if err = restaurants.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
