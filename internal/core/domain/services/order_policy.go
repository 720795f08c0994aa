package services

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderNotVisible is the cause used when the actor is not a party of the order.
	ErrOrderNotVisible = errors.New("actor is not a party of the order")

	// ErrStatusNotAllowedForRole is the cause used when the actor's role may not
	// request the target status. It is the InvalidTransition kind, reported as
	// an authorization failure.
	ErrStatusNotAllowedForRole = errors.New("status is not allowed for role")
)

// OrderPolicy holds the authorization rules of the order flows.
//
// Business rules:
//   - A Client sees only its own orders and never changes a status
//   - An Owner sees orders of its restaurants and may set Cooking or Cooked
//   - A Delivery actor sees orders it drives and may set PickedUp or Delivered
//   - No adjacency is enforced between statuses
type OrderPolicy struct{}

// NewOrderPolicy returns the role rules for viewing and editing orders.
func NewOrderPolicy() OrderPolicy {
	return OrderPolicy{}
}

// CanView reports whether actor is the customer, the driver or the restaurant
// owner of o, according to the actor's role.
func (p OrderPolicy) CanView(actor user.Actor, o *order.Order) bool {
	canSee := true

	if actor.Is(user.Client) {
		if id := o.CustomerID(); id == nil || !id.IsEqual(actor.ID()) {
			canSee = false
		}
	}

	if actor.Is(user.Delivery) {
		if id := o.DriverID(); id == nil || !id.IsEqual(actor.ID()) {
			canSee = false
		}
	}

	if actor.Is(user.Owner) && !o.RestaurantOwnerID().IsEqual(actor.ID()) {
		canSee = false
	}

	return canSee
}

// CanTransition reports whether actor may move o to target.
func (p OrderPolicy) CanTransition(actor user.Actor, o *order.Order, target order.Status) bool {
	return p.AuthorizeTransition(actor, o, target) == nil
}

// AuthorizeView returns a NotAuthorizedError when CanView is false.
func (p OrderPolicy) AuthorizeView(actor user.Actor, o *order.Order) error {
	if !p.CanView(actor, o) {
		return errs.NewNotAuthorizedErrorWithCause("order", ErrOrderNotVisible)
	}
	return nil
}

// AuthorizeTransition checks visibility first, then the role-gated target set.
// Both failures are NotAuthorizedError; the cause tells them apart.
func (p OrderPolicy) AuthorizeTransition(actor user.Actor, o *order.Order, target order.Status) error {
	if err := p.AuthorizeView(actor, o); err != nil {
		return err
	}

	if !allowedTargets(actor.Role())[target] {
		return errs.NewNotAuthorizedErrorWithCause("status",
			fmt.Errorf("%w: %s may not set %s", ErrStatusNotAllowedForRole, actor.Role(), target))
	}

	return nil
}

func allowedTargets(role user.Role) map[order.Status]bool {
	switch role {
	case user.Owner:
		return map[order.Status]bool{order.Cooking: true, order.Cooked: true}
	case user.Delivery:
		return map[order.Status]bool{order.PickedUp: true, order.Delivered: true}
	default:
		return nil
	}
}
