package queries

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery represents a login attempt with email and password.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query. The email is normalized the
// same way registration normalizes it.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the normalized email address.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the raw password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the issued token and the
// authenticated user's public identity.
type AuthenticateUserQueryResponse struct {
	Token  string
	UserID kernel.UUID
	Name   string
	Email  string
	Role   identity.Role
}
