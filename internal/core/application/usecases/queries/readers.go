// Package queries contains read-only operations.
// Order queries go through repository readers so that the visibility rules run
// on domain aggregates; flat listings read straight from the database.
//
// Restaurant listings are paged by RestaurantsPageSize, promoted restaurants
// first, and report the total number of pages and results. Pages start at 1.
package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
)

type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.ID) (*order.Order, error)
		FindMatching(ctx context.Context, criteria ports.OrderCriteria) ([]*order.Order, error)
	}

	RestaurantReader interface {
		Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)
	}

	MenuReader interface {
		FindByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error)
	}

	UserReader interface {
		Get(ctx context.Context, id kernel.ID) (*user.User, error)
	}
)
