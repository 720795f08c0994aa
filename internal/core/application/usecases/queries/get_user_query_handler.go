package queries

import (
	"context"

	"eats/internal/core/domain/model/user"
)

type GetUserQueryHandler struct {
	users UserReader
}

// NewGetUserQueryHandler creates a handler for profile reads.
func NewGetUserQueryHandler(users UserReader) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

// Handle returns an ObjectNotFoundError for an unknown user.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.users.Get(ctx, query.UserID())
}
