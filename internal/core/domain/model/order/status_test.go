package order_test

import (
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
		err := s.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	}
}

func TestStatus_String(t *testing.T) {
	testCases := map[order.Status]string{
		order.Pending:    "Pending",
		order.Cooking:    "Cooking",
		order.Cooked:     "Cooked",
		order.PickedUp:   "PickedUp",
		order.Delivered:  "Delivered",
		order.Unknown:    "Unknown",
		order.Status(42): "Unknown",
	}

	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject Unknown and unknown names", func(t *testing.T) {
		for _, name := range []string{"Unknown", "pending", "", "Lost"} {
			_, err := order.ParseStatus(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}
