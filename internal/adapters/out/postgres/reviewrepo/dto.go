// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence.
package reviewrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Rating       int
	Comment      string
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain entity to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Rating:       aggregate.Rating(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain entity.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, customerID, restaurantID, dto.Rating, dto.Comment, dto.CreatedAt)
}
