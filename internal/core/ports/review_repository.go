package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for restaurant reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetAllByRestaurant retrieves every review of the given restaurant,
	// newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*review.Review, error)

	// GetRatingsByRestaurant retrieves just the rating values of the given
	// restaurant's reviews. Used to recompute the rating aggregate without
	// materializing full review entities.
	GetRatingsByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]int, error)
}
