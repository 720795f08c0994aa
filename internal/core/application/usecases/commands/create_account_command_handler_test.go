package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const newUserEmail = "cook@example.com"

type accountFixture struct {
	uow           *MockUoW
	users         *MockUserRepository
	verifications *MockVerificationRepository
	mailer        *MockMailer
	handler       commands.CreateAccountCommandHandler
}

func newAccountFixture() accountFixture {
	f := accountFixture{
		uow:           new(MockUoW),
		users:         new(MockUserRepository),
		verifications: new(MockVerificationRepository),
		mailer:        new(MockMailer),
	}
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("VerificationRepository").Return(f.verifications).Maybe()
	f.handler = commands.NewCreateAccountCommandHandler(uowFactory{f.uow}.account(), f.mailer, discardLogger())
	return f
}

func accountCommand(t *testing.T, email string) commands.CreateAccountCommand {
	t.Helper()
	cmd, err := commands.NewCreateAccountCommand(email, "s3cret!", user.Owner)
	require.NoError(t, err)
	return cmd
}

func TestCreateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newAccountFixture()

	var storedCode string
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.users.On("GetByEmail", ctx, newUserEmail).
			Return(nil, errs.NewObjectNotFoundError("user", newUserEmail)).Once(),
		f.users.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once().
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*user.User).AssignID(kernel.MustNewID(7)))
			}),
		f.verifications.On("Add", ctx, mock.AnythingOfType("*user.Verification")).Return(nil).Once().
			Run(func(args mock.Arguments) {
				v := args.Get(1).(*user.Verification)
				assert.True(t, v.UserID().IsEqual(kernel.MustNewID(7)))
				storedCode = v.Code()
			}),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.mailer.On("SendVerificationEmail", ctx, newUserEmail, mock.AnythingOfType("string")).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	created, err := f.handler.Handle(ctx, accountCommand(t, newUserEmail))

	require.NoError(t, err)
	assert.Equal(t, newUserEmail, created.Email())
	assert.Equal(t, user.Owner, created.Role())
	assert.False(t, created.Verified())
	assert.True(t, created.CheckPassword("s3cret!"))
	assert.NotEmpty(t, storedCode)
	f.mailer.AssertCalled(t, "SendVerificationEmail", ctx, newUserEmail, storedCode)
	f.uow.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.verifications.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	f := newAccountFixture()
	existing, err := user.RestoreUser(kernel.MustNewID(7), newUserEmail, "hash", user.Client, true)
	require.NoError(t, err)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.users.On("GetByEmail", ctx, newUserEmail).Return(existing, nil).Once()

	_, err = f.handler.Handle(ctx, accountCommand(t, newUserEmail))

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, commands.ErrEmailIsTaken)
	f.users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.mailer.AssertNotCalled(t, "SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAccountCommandHandler_Handle_MailFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	f := newAccountFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.users.On("GetByEmail", ctx, newUserEmail).Return(nil, errs.NewObjectNotFoundError("user", newUserEmail)).Once()
	f.users.On("Add", ctx, mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		require.NoError(t, args.Get(1).(*user.User).AssignID(kernel.MustNewID(8)))
	})
	f.verifications.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.mailer.On("SendVerificationEmail", ctx, newUserEmail, mock.Anything).Return(errors.New("smtp down")).Once()

	created, err := f.handler.Handle(ctx, accountCommand(t, newUserEmail))

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(kernel.MustNewID(8)))
	f.uow.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_LookupFailure(t *testing.T) {
	ctx := t.Context()
	f := newAccountFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.users.On("GetByEmail", ctx, newUserEmail).Return(nil, errors.New("connection reset")).Once()

	_, err := f.handler.Handle(ctx, accountCommand(t, newUserEmail))

	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrConflict)
	f.users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateAccountCommandHandler_Handle_InvalidEmail(t *testing.T) {
	f := newAccountFixture()

	_, err := f.handler.Handle(t.Context(), accountCommand(t, "not an email"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestNewCreateAccountCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(" ", "", user.Role("Chef"))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
