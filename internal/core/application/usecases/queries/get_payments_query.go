package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrGetPaymentsQueryIsNotConstructed = errors.New(
		"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
	)
)

// GetPaymentsQuery lists the promotion payments made by the acting owner.
//
// Example:
//
//	query, _ := NewGetPaymentsQuery(actor)
//	payments, err := handler.Handle(ctx, query)
//	for _, p := range payments {
//	    fmt.Printf("%s paid for restaurant %s at %s\n", p.TransactionID, p.RestaurantID, p.CreatedAt)
//	}
type GetPaymentsQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewGetPaymentsQuery(actor user.Actor) (GetPaymentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	return GetPaymentsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

func (q GetPaymentsQuery) Actor() user.Actor {
	return q.actor
}

// GetPaymentsQueryResponse is one row of the payment history.
type GetPaymentsQueryResponse struct {
	ID            kernel.ID
	TransactionID string
	RestaurantID  kernel.ID
	CreatedAt     time.Time
}
