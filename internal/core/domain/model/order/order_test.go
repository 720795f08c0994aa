package order_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.MustNewID(10), []order.ItemOption{{Name: "size", Choice: strPtr("L")}})
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(3),
		[]order.Item{item}, kernel.MustNewPrice(15))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order without driver", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.InDelta(t, 15.0, o.Total().Amount(), 1e-9)
		assert.Equal(t, int64(1), o.CustomerID().Int64())
		assert.Nil(t, o.DriverID())
		assert.False(t, o.HasDriver())
		assert.Equal(t, int64(2), o.RestaurantID().Int64())
		assert.Equal(t, int64(3), o.RestaurantOwnerID().Int64())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "L", *o.Items()[0].Options()[0].Choice)
		assert.True(t, o.ID().IsZero())
	})

	t.Run("should accept an empty item list", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewID(3), nil, kernel.Price{})

		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID{}, kernel.ID{}, kernel.MustNewID(3), nil, kernel.Price{})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("should assign order and item ids once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignID(kernel.MustNewID(100), []kernel.ID{kernel.MustNewID(200)}))

		assert.Equal(t, int64(100), o.ID().Int64())
		assert.Equal(t, int64(200), o.Items()[0].ID().Int64())

		err := o.AssignID(kernel.MustNewID(101), []kernel.ID{kernel.MustNewID(201)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, int64(100), o.ID().Int64())
	})

	t.Run("should reject a mismatched number of item ids", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignID(kernel.MustNewID(100), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.ID().IsZero())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should allow skipping intermediate statuses", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cooked))
		assert.Equal(t, order.Cooked, o.Status())
	})

	t.Run("should allow changes after delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		require.NoError(t, o.ChangeStatus(order.PickedUp))
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("should keep the total untouched", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cooking))
		assert.InDelta(t, 15.0, o.Total().Amount(), 1e-9)
	})

	t.Run("should reject invalid targets", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.ChangeStatus(order.Unknown))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("should assign a driver once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignDriver(kernel.MustNewID(7)))
		assert.True(t, o.HasDriver())
		assert.Equal(t, int64(7), o.DriverID().Int64())
	})

	t.Run("should reject a second driver with a conflict", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignDriver(kernel.MustNewID(7)))

		err := o.AssignDriver(kernel.MustNewID(8))

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, order.ErrOrderAlreadyHasDriver)
		assert.Equal(t, int64(7), o.DriverID().Int64())
	})

	t.Run("should reject a missing driver id", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AssignDriver(kernel.ID{}))
		assert.False(t, o.HasDriver())
	})
}

func TestOrder_GettersReturnCopies(t *testing.T) {
	o := newTestOrder(t)

	id := o.CustomerID()
	*id = kernel.MustNewID(99)
	items := o.Items()
	items[0] = order.Item{}

	assert.Equal(t, int64(1), o.CustomerID().Int64())
	assert.Equal(t, int64(10), o.Items()[0].DishID().Int64())
}

func TestRestoreOrder(t *testing.T) {
	driver := kernel.MustNewID(5)

	o, err := order.RestoreOrder(kernel.MustNewID(1), nil, &driver, kernel.MustNewID(2), kernel.MustNewID(3),
		nil, kernel.MustNewPrice(9), order.PickedUp)

	require.NoError(t, err)
	assert.Nil(t, o.CustomerID())
	assert.True(t, o.HasDriver())
	assert.Equal(t, order.PickedUp, o.Status())

	_, err = order.RestoreOrder(kernel.MustNewID(1), nil, nil, kernel.MustNewID(2), kernel.MustNewID(3),
		nil, kernel.Price{}, order.Unknown)
	require.Error(t, err)
}
