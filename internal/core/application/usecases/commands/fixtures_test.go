package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

const (
	clientID       = 1
	ownerID        = 2
	driverID       = 3
	otherOwnerID   = 4
	restaurantID   = 10
	pizzaID        = 20
	existingOrder  = 30
	verificationID = 40
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func actor(id int64, role user.Role) user.Actor {
	return user.MustNewActor(kernel.MustNewID(id), role)
}

func testRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.RestoreRestaurant(kernel.MustNewID(restaurantID), "Pizza Place", "1 Main St", "",
		kernel.MustNewID(ownerID), nil, false, nil)
	require.NoError(t, err)
	return r
}

func testPizza(t *testing.T) *restaurant.Dish {
	t.Helper()
	extra := kernel.MustNewPrice(5)
	d, err := restaurant.RestoreDish(kernel.MustNewID(pizzaID), kernel.MustNewID(restaurantID), "Margherita",
		kernel.MustNewPrice(10), "", "Tomato and mozzarella",
		[]restaurant.DishOption{{Name: "size", Extra: &extra}})
	require.NoError(t, err)
	return d
}

func testOrder(t *testing.T, status order.Status, driver *kernel.ID) *order.Order {
	t.Helper()
	customer := kernel.MustNewID(clientID)
	item, err := order.RestoreItem(kernel.MustNewID(1), kernel.MustNewID(pizzaID), nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.MustNewID(existingOrder), &customer, driver,
		kernel.MustNewID(restaurantID), kernel.MustNewID(ownerID), []order.Item{item}, kernel.MustNewPrice(15), status)
	require.NoError(t, err)
	return o
}
