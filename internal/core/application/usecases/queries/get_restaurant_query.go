package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)
)

// GetRestaurantQuery is public: any visitor may read a restaurant and its menu.
type GetRestaurantQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.ID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

type GetRestaurantQueryResponse struct {
	Restaurant *restaurant.Restaurant
	Menu       []*restaurant.Dish
}
