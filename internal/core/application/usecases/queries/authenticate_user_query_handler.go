package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordVerifier checks a raw password against its stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// TokenIssuer signs an access token for the given identity.
type TokenIssuer interface {
	Issue(userID kernel.UUID, role identity.Role) (string, error)
}

// AuthenticateUserQueryHandler verifies credentials and issues access tokens.
// A wrong password and an unknown email fail identically so the endpoint
// does not leak which emails are registered.
type AuthenticateUserQueryHandler struct {
	db       *gorm.DB
	verifier PasswordVerifier
	issuer   TokenIssuer
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
func NewAuthenticateUserQueryHandler(
	db *gorm.DB, verifier PasswordVerifier, issuer TokenIssuer,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, verifier: verifier, issuer: issuer}
}

// Handle executes the login query.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			password_hash,
			role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var id uuid.UUID
	var name, email, passwordHash, roleName string

	err := row.Scan(&id, &name, &email, &passwordHash, &roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateUserQueryResponse{}, errs.NewUnauthorizedError(query.Email(), "login")
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if err = h.verifier.Verify(passwordHash, query.Password()); err != nil {
		return AuthenticateUserQueryResponse{}, errs.NewUnauthorizedError(query.Email(), "login")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	role, err := identity.RoleFromString(roleName)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	token, err := h.issuer.Issue(userID, role)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:  token,
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
	}, nil
}
