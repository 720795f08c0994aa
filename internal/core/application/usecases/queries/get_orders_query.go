package queries

import (
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists the orders an actor is a party of, optionally
// restricted to one status.
type GetOrdersQuery struct {
	actor  user.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery copies status. A nil status matches every order.
func NewGetOrdersQuery(actor user.Actor, status *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	q := GetOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() user.Actor { return q.actor }

// Status returns the filter, nil when every status is wanted.
func (q GetOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
