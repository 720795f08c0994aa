package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches one order on behalf of an actor.
type GetOrderQuery struct {
	actor   user.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor user.Actor, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() user.Actor  { return q.actor }
func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }
