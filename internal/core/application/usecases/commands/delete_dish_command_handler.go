package commands

import (
	"context"
)

type DeleteDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewDeleteDishCommandHandler removes dishes from the menus of the actor's restaurants.
func NewDeleteDishCommandHandler(uowFactory RestaurantUoWFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishes := uow.DishRepository()
	dish, err := dishes.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	r, err := uow.RestaurantRepository().Get(ctx, dish.RestaurantID())
	if err != nil {
		return err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return err
	}

	if err = dishes.Delete(ctx, dish.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
