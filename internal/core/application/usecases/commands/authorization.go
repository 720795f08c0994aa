package commands

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

var (
	ErrRoleIsNotAllowed      = errors.New("role is not allowed to run this command")
	ErrNotTheRestaurantOwner = errors.New("actor does not own the restaurant")
)

func requireRole(actor user.Actor, role user.Role) error {
	if !actor.Is(role) {
		return errs.NewNotAuthorizedErrorWithCause("role",
			fmt.Errorf("%w: %s required, got %s", ErrRoleIsNotAllowed, role, actor.Role()))
	}
	return nil
}

func requireOwnership(actor user.Actor, r *restaurant.Restaurant) error {
	if !r.IsOwnedBy(actor.ID()) {
		return errs.NewNotAuthorizedErrorWithCause("restaurant", ErrNotTheRestaurantOwner)
	}
	return nil
}
