package queries

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetPaymentsQueryHandler reads the payment history straight from the
// payments table, newest first.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler reads payments straight from db.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

func (h GetPaymentsQueryHandler) Handle(ctx context.Context, query GetPaymentsQuery) ([]GetPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transaction_id,
			restaurant_id,
			created_at
		FROM payments
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.Actor().ID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, restaurantID int64
			transactionID    string
			createdAt        time.Time
		)

		if err = rows.Scan(&id, &transactionID, &restaurantID, &createdAt); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		rID, idErr := kernel.NewID(restaurantID)
		if idErr != nil {
			return nil, idErr
		}

		payments = append(payments, GetPaymentsQueryResponse{
			ID:            paymentID,
			TransactionID: transactionID,
			RestaurantID:  rID,
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
