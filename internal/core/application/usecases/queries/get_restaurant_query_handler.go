package queries

import (
	"context"
)

type GetRestaurantQueryHandler struct {
	restaurants RestaurantReader
	menus       MenuReader
}

// NewGetRestaurantQueryHandler reads a restaurant and its menu.
func NewGetRestaurantQueryHandler(restaurants RestaurantReader, menus MenuReader) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{restaurants: restaurants, menus: menus}
}

func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (GetRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	r, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	menu, err := h.menus.FindByRestaurant(ctx, r.ID())
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	return GetRestaurantQueryResponse{Restaurant: r, Menu: menu}, nil
}
