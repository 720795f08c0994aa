package commands

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
)

type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates restaurants for owners, with the
// category created on first use.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle requires the Owner role. The restaurant is validated before the
// category is looked up so that bad input never creates a category.
func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Actor(), user.Owner); err != nil {
		return nil, err
	}

	if _, err := restaurant.NewRestaurant(cmd.Name(), cmd.Address(), cmd.CoverImage(), cmd.Actor().ID(), nil); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var categoryID *kernel.ID
	if cmd.CategoryName() != "" {
		category, err := uow.CategoryRepository().GetOrCreate(ctx, cmd.CategoryName())
		if err != nil {
			return nil, err
		}
		id := category.ID()
		categoryID = &id
	}

	r, err := restaurant.NewRestaurant(cmd.Name(), cmd.Address(), cmd.CoverImage(), cmd.Actor().ID(), categoryID)
	if err != nil {
		return nil, err
	}

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
