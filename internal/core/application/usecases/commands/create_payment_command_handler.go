package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler stores the payment and promotes the paid
// restaurant for restaurant.PromotionPeriod, in one transaction.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	now        func() time.Time
}

// NewCreatePaymentCommandHandler records payments and promotes the paid
// restaurant for a week.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants := uow.RestaurantRepository()
	r, err := restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = requireOwnership(cmd.Actor(), r); err != nil {
		return nil, err
	}

	now := h.now().UTC()
	p, err := payment.NewPayment(cmd.TransactionID(), cmd.Actor().ID(), r.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	r.Promote(now)
	if err = restaurants.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
