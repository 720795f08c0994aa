// Package payment provides the Payment entity recorded when an owner pays to
// promote one of their restaurants.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is an external payment transaction tied to an owner and a restaurant.
type Payment struct {
	id            kernel.ID
	transactionID string
	userID        kernel.ID
	restaurantID  kernel.ID
	createdAt     time.Time

	isConstructed bool
}

// NewPayment records a transaction made at createdAt.
func NewPayment(transactionID string, userID, restaurantID kernel.ID, createdAt time.Time) (*Payment, error) {
	transactionID = strings.TrimSpace(transactionID)
	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transaction id")
	}
	if err := errors.Join(txErr, userID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	return &Payment{
		transactionID: transactionID,
		userID:        userID,
		restaurantID:  restaurantID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePayment rebuilds a persisted payment.
func RestorePayment(id kernel.ID, transactionID string, userID, restaurantID kernel.ID, createdAt time.Time) (*Payment, error) {
	p, err := NewPayment(transactionID, userID, restaurantID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.ID           { return p.id }
func (p *Payment) TransactionID() string   { return p.transactionID }
func (p *Payment) UserID() kernel.ID       { return p.userID }
func (p *Payment) RestaurantID() kernel.ID { return p.restaurantID }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }

// AssignID records the identity generated by storage. It can only happen once.
func (p *Payment) AssignID(id kernel.ID) error {
	if !p.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("payment already has id %s", p.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}
