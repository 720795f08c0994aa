package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add returns a ConflictError when the email is already registered.
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.ID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// VerificationRepository stores pending email verification codes.
type VerificationRepository interface {
	Add(ctx context.Context, v *user.Verification) error
	GetByCode(ctx context.Context, code string) (*user.Verification, error)
	Delete(ctx context.Context, id kernel.ID) error
}
