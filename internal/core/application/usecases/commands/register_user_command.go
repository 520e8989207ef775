package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const minPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// RegisterUserCommand represents a request to create a user account.
// Carries the raw password; hashing happens in the handler so the command
// stays a plain value.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string
	phone    string
	role     identity.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
func NewRegisterUserCommand(
	userID kernel.UUID, name, email, password, phone string, role identity.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the new user's id.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the normalized email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the raw password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() identity.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
