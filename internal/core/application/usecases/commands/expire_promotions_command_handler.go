package commands

import (
	"context"
)

type ExpirePromotionsCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewExpirePromotionsCommandHandler clears promotions whose end has passed.
// It runs from the promotions job.
func NewExpirePromotionsCommandHandler(uowFactory RestaurantUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many restaurants lost their promotion.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RestaurantRepository()
	expired, err := repo.FindPromotedUntil(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	count := 0
	for _, r := range expired {
		if !r.ExpirePromotion(cmd.Now()) {
			continue
		}
		if err = repo.Update(ctx, r); err != nil {
			return 0, err
		}
		count++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
