package user

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVerificationIsNotConstructed = errors.New("Verification must be created via NewVerification or RestoreVerification")

// Verification is the one-time code mailed to a user to confirm the address.
type Verification struct {
	id     kernel.ID
	code   string
	userID kernel.ID

	isConstructed bool
}

// NewVerification issues a random code for a persisted user.
func NewVerification(userID kernel.ID) (*Verification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Verification{code: uuid.NewString(), userID: userID, isConstructed: true}, nil
}

// RestoreVerification rebuilds a persisted verification.
func RestoreVerification(id kernel.ID, code string, userID kernel.ID) (*Verification, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	return &Verification{id: id, code: code, userID: userID, isConstructed: true}, nil
}

func (v *Verification) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVerificationIsNotConstructed
	}
	return nil
}

func (v *Verification) ID() kernel.ID     { return v.id }
func (v *Verification) Code() string      { return v.code }
func (v *Verification) UserID() kernel.ID { return v.userID }

// AssignID records the identity generated by storage. It can only happen once.
func (v *Verification) AssignID(id kernel.ID) error {
	if !v.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("verification already has id %s", v.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}
