package commands

import (
	"errors"
	"time"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrExpirePromotionsCommandIsNotConstructed = errors.New(
		"ExpirePromotionsCommand must be created via NewExpirePromotionsCommand constructor",
	)
)

// ExpirePromotionsCommand lifts every promotion that ended at or before Now.
type ExpirePromotionsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpirePromotionsCommand expires promotions that ended before now.
func NewExpirePromotionsCommand(now time.Time) (ExpirePromotionsCommand, error) {
	if now.IsZero() {
		return ExpirePromotionsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return ExpirePromotionsCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpirePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePromotionsCommandIsNotConstructed)
}

func (c ExpirePromotionsCommand) Now() time.Time {
	return c.now
}
