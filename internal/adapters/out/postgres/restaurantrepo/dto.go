// Package restaurantrepo provides data transfer objects and mapping functions
// for the restaurant catalog. Orders snapshot what they need from these rows
// at placement; later catalog edits never touch existing orders.
package restaurantrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	DeliveryFee float64
	Rating      float64
	ReviewCount int
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        float64
	Available    bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// toRestaurant converts a database DTO to the catalog read model.
func toRestaurant(dto RestaurantDTO) (ports.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:          id,
		OwnerID:     ownerID,
		Name:        dto.Name,
		DeliveryFee: dto.DeliveryFee,
		Rating:      dto.Rating,
		ReviewCount: dto.ReviewCount,
	}, nil
}

// toMenuItem converts a database DTO to the catalog read model.
func toMenuItem(dto MenuItemDTO) (ports.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MenuItem{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        dto.Price,
		Available:    dto.Available,
	}, nil
}
