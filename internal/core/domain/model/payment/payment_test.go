package payment_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Now()

	t.Run("should trim the transaction id", func(t *testing.T) {
		p, err := payment.NewPayment("  tx-1 ", kernel.MustNewID(1), kernel.MustNewID(2), now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "tx-1", p.TransactionID())
		assert.True(t, p.ID().IsZero())
	})

	t.Run("should require transaction, user and restaurant", func(t *testing.T) {
		p, err := payment.NewPayment("", kernel.ID{}, kernel.ID{}, now)

		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "transaction id")
	})
}
