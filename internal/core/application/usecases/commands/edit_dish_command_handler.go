package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
)

type EditDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewEditDishCommandHandler creates a handler for menu edits.
func NewEditDishCommandHandler(uowFactory RestaurantUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown dish and a
// NotAuthorizedError when the actor does not own its restaurant.
func (h EditDishCommandHandler) Handle(ctx context.Context, cmd EditDishCommand) (*restaurant.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishes := uow.DishRepository()
	dish, err := dishes.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	r, err := uow.RestaurantRepository().Get(ctx, dish.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return nil, err
	}

	if err = dish.Edit(cmd.Changes()); err != nil {
		return nil, err
	}

	if err = dishes.Update(ctx, dish); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dish, nil
}
