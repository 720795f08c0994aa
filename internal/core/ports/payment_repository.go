package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for promotion payments.
type PaymentRepository interface {
	// Add returns a ConflictError when the transaction id was already recorded.
	Add(ctx context.Context, p *payment.Payment) error
	FindByUser(ctx context.Context, userID kernel.ID) ([]*payment.Payment, error)
}
