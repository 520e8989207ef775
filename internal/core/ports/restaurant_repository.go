package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// Restaurant is the catalog view of a restaurant as order placement needs it:
// who owns it, what delivery costs, and the current review aggregate.
type Restaurant struct {
	ID          kernel.UUID
	OwnerID     kernel.UUID
	Name        string
	DeliveryFee float64
	Rating      float64
	ReviewCount int
}

// MenuItem is the catalog view of a single menu entry. Name and Price are the
// values an order snapshots at placement time.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        float64
	Available    bool
}

// RestaurantRepository defines the read/update contract against the catalog.
// Orders never follow these rows after placement; they copy what they need.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// GetAll retrieves every restaurant. Used by the rating reconciliation
	// job to sweep the whole catalog.
	GetAll(ctx context.Context) ([]Restaurant, error)

	// GetMenuItems retrieves the menu items with the given ids. Items
	// missing from the catalog are absent from the result; the caller
	// decides whether that is an error.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]MenuItem, error)

	// UpdateRating overwrites the restaurant's review aggregate.
	UpdateRating(ctx context.Context, id kernel.UUID, rating services.RestaurantRating) error
}
