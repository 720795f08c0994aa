package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrEditProfileCommandIsNotConstructed = errors.New(
		"EditProfileCommand must be created via NewEditProfileCommand constructor",
	)
)

// EditProfileCommand changes the email and/or the password of the acting
// user. A nil field is left unchanged.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	email    *string
	password *string

	guard guard.ConstructorGuard
}

// NewEditProfileCommand changes only the values that are not nil. Present
// values must not be blank.
func NewEditProfileCommand(actor user.Actor, email, password *string) (EditProfileCommand, error) {
	if err := actor.Validate(); err != nil {
		return EditProfileCommand{}, err
	}

	cmd := EditProfileCommand{actor: actor, guard: guard.NewConstructorGuard()}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			return EditProfileCommand{}, errs.NewValueIsRequiredError("email")
		}
		cmd.email = &trimmed
	}
	if password != nil {
		if *password == "" {
			return EditProfileCommand{}, errs.NewValueIsRequiredError("password")
		}
		p := *password
		cmd.password = &p
	}
	return cmd, nil
}

func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

func (c EditProfileCommand) Actor() user.Actor { return c.actor }

// Email returns the new address, if one was given.
func (c EditProfileCommand) Email() (string, bool) {
	if c.email == nil {
		return "", false
	}
	return *c.email, true
}

// Password returns the new clear-text password, if one was given.
func (c EditProfileCommand) Password() (string, bool) {
	if c.password == nil {
		return "", false
	}
	return *c.password, true
}
