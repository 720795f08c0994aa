package restaurant_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *kernel.Price {
	p := kernel.MustNewPrice(v)
	return &p
}

func TestNewDish(t *testing.T) {
	options := []restaurant.DishOption{
		{Name: "size", Choices: []restaurant.DishChoice{{Name: "L", Extra: price(2)}, {Name: "S"}}},
		{Name: "cheese", Extra: price(1)},
	}

	t.Run("should create a dish with options", func(t *testing.T) {
		d, err := restaurant.NewDish(kernel.MustNewID(3), "Margherita", kernel.MustNewPrice(10), "", "Tomato and basil", options)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Len(t, d.Options(), 2)

		size, ok := d.FindOption("size")
		require.True(t, ok)
		assert.False(t, size.HasFlatExtra())
		large, ok := size.FindChoice("L")
		require.True(t, ok)
		assert.InDelta(t, 2.0, large.Extra.Amount(), 1e-9)

		cheese, ok := d.FindOption("cheese")
		require.True(t, ok)
		assert.True(t, cheese.HasFlatExtra())

		_, ok = d.FindOption("sauce")
		assert.False(t, ok)
	})

	t.Run("should not expose the internal option slice", func(t *testing.T) {
		d, err := restaurant.NewDish(kernel.MustNewID(3), "Margherita", kernel.MustNewPrice(10), "", "Tomato and basil", options)
		require.NoError(t, err)

		opts := d.Options()
		opts[0].Name = "changed"

		_, ok := d.FindOption("size")
		assert.True(t, ok)
	})

	t.Run("should reject unnamed options and bad descriptions", func(t *testing.T) {
		_, err := restaurant.NewDish(kernel.MustNewID(3), "Margherita", kernel.MustNewPrice(10), "", "abc",
			[]restaurant.DishOption{{Name: ""}})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDishOption_ZeroExtraFallsBackToChoices(t *testing.T) {
	o := restaurant.DishOption{Name: "size", Extra: price(0)}

	assert.False(t, o.HasFlatExtra())
}

func TestDish_Edit(t *testing.T) {
	newDish := func(t *testing.T) *restaurant.Dish {
		t.Helper()
		d, err := restaurant.NewDish(kernel.MustNewID(3), "Margherita", kernel.MustNewPrice(10), "m.png", "Tomato and basil",
			[]restaurant.DishOption{{Name: "cheese", Extra: price(1)}})
		require.NoError(t, err)
		return d
	}

	t.Run("should replace price and options", func(t *testing.T) {
		d := newDish(t)
		options := []restaurant.DishOption{{Name: "size", Choices: []restaurant.DishChoice{{Name: "L", Extra: price(3)}}}}

		err := d.Edit(restaurant.DishChanges{Price: price(12), Options: &options})

		require.NoError(t, err)
		assert.InDelta(t, 12.0, d.Price().Amount(), 1e-9)
		assert.Equal(t, "Margherita", d.Name())
		_, ok := d.FindOption("cheese")
		assert.False(t, ok)
		_, ok = d.FindOption("size")
		assert.True(t, ok)
	})

	t.Run("should keep the dish unchanged on invalid input", func(t *testing.T) {
		d := newDish(t)
		name := "Pizza Bianca"
		description := "abc"

		err := d.Edit(restaurant.DishChanges{Name: &name, Description: &description, Price: price(20)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "Margherita", d.Name())
		assert.InDelta(t, 10.0, d.Price().Amount(), 1e-9)
	})
}
