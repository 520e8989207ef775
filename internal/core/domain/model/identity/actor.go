package identity

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity performing an operation:
// a user id paired with the role it was authenticated under.
// The identity provider (JWT middleware) produces an Actor per request;
// the core never inspects credentials itself.
type Actor struct {
	id            kernel.UUID
	role          Role
	isConstructed bool
}

// NewActor creates a validated Actor from a user id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// ID returns the actor's user id.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor was authenticated under.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
