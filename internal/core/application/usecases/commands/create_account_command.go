package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateAccountCommandIsNotConstructed = errors.New(
		"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
	)
)

// CreateAccountCommand registers a new user.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand trims email and reports every missing or invalid
// value at once.
func NewCreateAccountCommand(email, password string, role user.Role) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{guard: guard.NewConstructorGuard()}

	email = strings.TrimSpace(email)
	var errList []error
	if email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	errList = append(errList, role.Validate())
	if err := errors.Join(errList...); err != nil {
		return CreateAccountCommand{}, err
	}

	cmd.email = email
	cmd.password = password
	cmd.role = role
	return cmd, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) Email() string {
	return c.email
}

func (c CreateAccountCommand) Password() string {
	return c.password
}

func (c CreateAccountCommand) Role() user.Role {
	return c.role
}
