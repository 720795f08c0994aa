package user

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role is the kind of account an actor holds. It decides which orders the
// actor may see and which status changes it may request.
type Role string

const (
	Client   Role = "Client"
	Owner    Role = "Owner"
	Delivery Role = "Delivery"
)

// Validate rejects anything outside Client, Owner and Delivery.
func (r Role) Validate() error {
	switch r {
	case Client, Owner, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// ParseRole converts a wire value to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}
