package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the registered-account aggregate behind the identity provider.
// The order lifecycle core only ever sees a User as an Actor (id + role);
// the full aggregate exists so registration and login can be served.
//
// Invariants:
//   - id, name, email, and password hash are always present
//   - email is stored lowercased and must contain "@"
//   - role is one of the valid roles
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a new User with validation. The password must already be
// hashed by the caller; this aggregate never sees plaintext credentials.
func NewUser(id kernel.UUID, name, email, passwordHash, phone string, role Role) (*User, error) {
	user := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.phone = phone
	return user, nil
}

// RestoreUser reconstructs a User from persistence without resetting createdAt.
func RestoreUser(
	id kernel.UUID, name, email, passwordHash, phone string, role Role, createdAt time.Time,
) (*User, error) {
	user, err := NewUser(id, name, email, passwordHash, phone, role)
	if err != nil {
		return nil, err
	}

	user.createdAt = createdAt
	return user, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's lowercased email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Actor returns the authenticated-identity view of this user.
func (u *User) Actor() (Actor, error) {
	return NewActor(u.id, u.role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
