package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
)

// CreatePaymentCommand records a promotion payment made by a restaurant owner.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor         user.Actor
	restaurantID  kernel.ID
	transactionID string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand trims transactionID, which must not be blank.
func NewCreatePaymentCommand(
	actor user.Actor,
	restaurantID kernel.ID,
	transactionID string,
) (CreatePaymentCommand, error) {
	transactionID = strings.TrimSpace(transactionID)

	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transactionId")
	}
	if err := errors.Join(actor.Validate(), restaurantID.Validate(), txErr); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		actor:         actor,
		restaurantID:  restaurantID,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) Actor() user.Actor       { return c.actor }
func (c CreatePaymentCommand) RestaurantID() kernel.ID { return c.restaurantID }
func (c CreatePaymentCommand) TransactionID() string   { return c.transactionID }
