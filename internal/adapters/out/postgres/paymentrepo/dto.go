// Package paymentrepo persists restaurant promotion payments.
package paymentrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for payments.
type PaymentDTO struct {
	ID            int64     `gorm:"primaryKey"`
	TransactionID string    `gorm:"size:255;not null;uniqueIndex"`
	UserID        int64     `gorm:"not null;index"`
	RestaurantID  int64     `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Int64(),
		TransactionID: p.TransactionID(),
		UserID:        p.UserID().Int64(),
		RestaurantID:  p.RestaurantID().Int64(),
		CreatedAt:     p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(id, dto.TransactionID, userID, restaurantID, dto.CreatedAt)
}
