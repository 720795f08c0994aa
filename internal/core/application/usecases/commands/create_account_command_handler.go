package commands

import (
	"context"
	"errors"
	"log/slog"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

var ErrEmailIsTaken = errors.New("there is a user with that email already")

// CreateAccountCommandHandler stores a new account with a verification code
// and mails the code once the transaction is committed.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCreateAccountCommandHandler stores accounts and mails their verification
// code through mailer. A mail failure is logged and the account is kept.
func NewCreateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
		logger:     logger.With("component", "create_account_handler"),
	}
}

// Handle returns a ConflictError caused by ErrEmailIsTaken for a known email.
// A failed verification mail is logged; the account stays created.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.Email(), cmd.Password(), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	_, err = users.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return nil, errs.NewConflictErrorWithCause("email", ErrEmailIsTaken)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = users.Add(ctx, u); err != nil {
		return nil, err
	}

	verification, err := user.NewVerification(u.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.VerificationRepository().Add(ctx, verification); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.mailer.SendVerificationEmail(ctx, u.Email(), verification.Code()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to send verification email", "user_id", u.ID().Int64(), "error", err)
	}

	return u, nil
}
