package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
)

// EditRestaurantCommandHandler updates a restaurant owned by the actor.
type EditRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewEditRestaurantCommandHandler creates a handler for restaurant edits.
func NewEditRestaurantCommandHandler(uowFactory RestaurantUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown restaurant and a
// NotAuthorizedError when the actor does not own it. A new category name is
// created on first use, in the same transaction as the edit.
func (h EditRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd EditRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Actor(), user.Owner); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants := uow.RestaurantRepository()
	r, err := restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if cmd.CategoryName() != "" {
		category, catErr := uow.CategoryRepository().GetOrCreate(ctx, cmd.CategoryName())
		if catErr != nil {
			return nil, catErr
		}
		id := category.ID()
		changes.CategoryID = &id
	}

	if err = r.Edit(changes); err != nil {
		return nil, err
	}

	if err = restaurants.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
