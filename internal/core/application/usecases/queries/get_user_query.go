package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// GetUserQuery reads the public profile of an account. Any signed-in actor
// may read any profile.
type GetUserQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.ID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}
