package commands

import (
	"context"

	"foodorder/internal/core/domain/model/identity"
)

// PasswordHasher hashes raw passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterUserCommandHandler creates user accounts.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command. A taken email fails the command;
// the raw password never reaches the repository.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := identity.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), passwordHash, cmd.Phone(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
