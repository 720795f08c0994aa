package commands

import (
	"context"
	"errors"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditProfileCommandHandler updates the account of the acting user.
//
// A new email address makes the account unverified again: a fresh code
// replaces the pending one and is mailed once the transaction is committed.
// Submitting the current address changes nothing.
type EditProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewEditProfileCommandHandler creates a handler for profile edits.
func NewEditProfileCommandHandler(
	uowFactory AccountUoWFactory,
	mailer ports.Mailer,
	logger *slog.Logger,
) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
		logger:     logger.With("component", "edit_profile_handler"),
	}
}

// Handle returns a ConflictError caused by ErrEmailIsTaken when another
// account uses the new email.
func (h EditProfileCommandHandler) Handle(ctx context.Context, cmd EditProfileCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	var verification *user.Verification
	if email, ok := cmd.Email(); ok && email != u.Email() {
		if verification, err = h.changeEmail(ctx, users, u, email); err != nil {
			return nil, err
		}
	}

	if password, ok := cmd.Password(); ok {
		if err = u.ChangePassword(password); err != nil {
			return nil, err
		}
	}

	if err = users.Update(ctx, u); err != nil {
		return nil, err
	}

	if verification != nil {
		if err = uow.VerificationRepository().Add(ctx, verification); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if verification != nil {
		if err = h.mailer.SendVerificationEmail(ctx, u.Email(), verification.Code()); err != nil {
			h.logger.ErrorContext(ctx, "Failed to send verification email", "user_id", u.ID().Int64(), "error", err)
		}
	}

	return u, nil
}

func (h EditProfileCommandHandler) changeEmail(
	ctx context.Context,
	users ports.UserRepository,
	u *user.User,
	email string,
) (*user.Verification, error) {
	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil && !existing.ID().IsEqual(u.ID()):
		return nil, errs.NewConflictErrorWithCause("email", ErrEmailIsTaken)
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = u.ChangeEmail(email); err != nil {
		return nil, err
	}
	return user.NewVerification(u.ID())
}
