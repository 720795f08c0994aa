package user_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should hash the password and start unverified", func(t *testing.T) {
		u, err := user.NewUser("chef@example.com", "s3cret", user.Owner)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "chef@example.com", u.Email())
		assert.Equal(t, user.Owner, u.Role())
		assert.False(t, u.Verified())
		assert.True(t, u.ID().IsZero())
		assert.NotEqual(t, "s3cret", u.PasswordHash())
		assert.True(t, u.CheckPassword("s3cret"))
		assert.False(t, u.CheckPassword("wrong"))
	})

	t.Run("should join every validation error", func(t *testing.T) {
		u, err := user.NewUser("not-an-email", "", user.Role("Admin"))

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "Admin")
	})
}

func TestUser_AssignID(t *testing.T) {
	u, err := user.RestoreUser(kernel.MustNewID(1), "a@b.co", "hash", user.Client, true)
	require.NoError(t, err)

	err = u.AssignID(kernel.MustNewID(2))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, int64(1), u.ID().Int64())
}

func TestUser_ChangeEmail_ResetsVerification(t *testing.T) {
	u, err := user.RestoreUser(kernel.MustNewID(3), "old@example.com", "hash", user.Client, true)
	require.NoError(t, err)

	require.NoError(t, u.ChangeEmail("new@example.com"))

	assert.Equal(t, "new@example.com", u.Email())
	assert.False(t, u.Verified())

	u.Verify()
	assert.True(t, u.Verified())
}

func TestUser_Validate(t *testing.T) {
	var u *user.User
	assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
}

func TestNewActor(t *testing.T) {
	t.Run("should build an actor for every role", func(t *testing.T) {
		for _, role := range []user.Role{user.Client, user.Owner, user.Delivery} {
			a, err := user.NewActor(kernel.MustNewID(9), role)

			require.NoError(t, err)
			require.NoError(t, a.Validate())
			assert.True(t, a.Is(role))
		}
	})

	t.Run("should reject unknown roles and missing ids", func(t *testing.T) {
		_, err := user.NewActor(kernel.ID{}, user.Role("Admin"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value actor is not constructed", func(t *testing.T) {
		var a user.Actor

		assert.Equal(t, user.ErrActorIsNotConstructed, a.Validate())
	})
}

func TestNewVerification(t *testing.T) {
	v1, err := user.NewVerification(kernel.MustNewID(4))
	require.NoError(t, err)
	v2, err := user.NewVerification(kernel.MustNewID(4))
	require.NoError(t, err)

	assert.NotEmpty(t, v1.Code())
	assert.NotEqual(t, v1.Code(), v2.Code())
	assert.Equal(t, int64(4), v1.UserID().Int64())

	_, err = user.NewVerification(kernel.ID{})
	require.Error(t, err)
}
