// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index; registration with a taken email fails at the
// database level as well as in the repository.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string
	Phone        string `gorm:"type:varchar(32)"`
	Role         string `gorm:"type:varchar(32)"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *identity.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := identity.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(
		id, dto.Name, dto.Email, dto.PasswordHash, dto.Phone, role, dto.CreatedAt)
}
