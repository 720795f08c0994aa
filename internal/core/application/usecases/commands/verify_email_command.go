package commands

import (
	"errors"
	"strings"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrVerifyEmailCommandIsNotConstructed = errors.New(
		"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
	)
)

// VerifyEmailCommand confirms an email address with the code sent to it.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand trims code, which must not be blank.
func NewVerifyEmailCommand(code string) (VerifyEmailCommand, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return VerifyEmailCommand{}, errs.NewValueIsRequiredError("code")
	}
	return VerifyEmailCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

func (c VerifyEmailCommand) Code() string {
	return c.code
}
