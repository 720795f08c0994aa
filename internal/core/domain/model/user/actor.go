package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated party of a request. It is resolved by the
// identity collaborator and never changes during the request.
type Actor struct {
	id   kernel.ID
	role Role

	guard guard.ConstructorGuard
}

// NewActor validates the identity and role of an authenticated party.
func NewActor(id kernel.ID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// MustNewActor is NewActor for values known to be valid. It panics otherwise.
func MustNewActor(id kernel.ID, role Role) Actor {
	a, err := NewActor(id, role)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.ID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}
