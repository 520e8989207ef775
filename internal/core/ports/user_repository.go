package ports

import (
	"context"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. The user's email must not already be taken;
	// a conflicting email fails with a ValueIsInvalidError.
	Add(ctx context.Context, aggregate *identity.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByEmail retrieves a user by its normalized email address.
	// Returns ObjectNotFoundError when no user carries the email.
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}
