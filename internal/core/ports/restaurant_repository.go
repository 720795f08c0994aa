package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get returns an ObjectNotFoundError when the restaurant does not exist.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// Delete removes the restaurant; its dishes go with it.
	Delete(ctx context.Context, id kernel.ID) error

	// FindPromotedUntil lists promoted restaurants whose promotion ends at or before t.
	FindPromotedUntil(ctx context.Context, t time.Time) ([]*restaurant.Restaurant, error)
}

// DishRepository defines the persistence contract for menu dishes.
type DishRepository interface {
	Add(ctx context.Context, dish *restaurant.Dish) error
	Update(ctx context.Context, dish *restaurant.Dish) error
	Get(ctx context.Context, id kernel.ID) (*restaurant.Dish, error)
	Delete(ctx context.Context, id kernel.ID) error

	// FindByRestaurant returns the full menu of a restaurant.
	FindByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error)
}

// CategoryRepository stores restaurant categories keyed by slug.
type CategoryRepository interface {
	// GetOrCreate returns the category with the slug derived from name,
	// creating it when missing.
	GetOrCreate(ctx context.Context, name string) (restaurant.Category, error)
}
