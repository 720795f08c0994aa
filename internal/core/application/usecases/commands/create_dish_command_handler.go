package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
)

type CreateDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateDishCommandHandler adds dishes to the menus of the actor's restaurants.
func NewCreateDishCommandHandler(uowFactory RestaurantUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown restaurant and a
// NotAuthorizedError when the actor does not own it.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*restaurant.Dish, error) {
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

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return nil, err
	}

	dish, err := restaurant.NewDish(r.ID(), cmd.Name(), cmd.Price(), cmd.Photo(), cmd.Description(), cmd.Options())
	if err != nil {
		return nil, err
	}

	if err = uow.DishRepository().Add(ctx, dish); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dish, nil
}
