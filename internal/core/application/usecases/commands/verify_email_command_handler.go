package commands

import (
	"context"
)

// VerifyEmailCommandHandler marks the owner of a code as verified and
// consumes the code.
type VerifyEmailCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewVerifyEmailCommandHandler consumes verification codes.
func NewVerifyEmailCommandHandler(uowFactory AccountUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown code.
func (h VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	verifications := uow.VerificationRepository()
	verification, err := verifications.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	users := uow.UserRepository()
	u, err := users.Get(ctx, verification.UserID())
	if err != nil {
		return err
	}

	u.Verify()
	if err = users.Update(ctx, u); err != nil {
		return err
	}

	if err = verifications.Delete(ctx, verification.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
