package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantReviewsQueryIsNotConstructed = errors.New(
	"GetRestaurantReviewsQuery must be created via NewGetRestaurantReviewsQuery constructor",
)

// GetRestaurantReviewsQuery retrieves a restaurant's reviews, newest first.
// Reviews are public; no actor is involved.
type GetRestaurantReviewsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantReviewsQuery creates a review listing query.
func NewGetRestaurantReviewsQuery(restaurantID kernel.UUID) (GetRestaurantReviewsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantReviewsQuery{}, err
	}

	return GetRestaurantReviewsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantReviewsQueryIsNotConstructed)
}

// RestaurantID returns the reviewed restaurant's id.
func (q GetRestaurantReviewsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantReviewsQueryResponse is one review in the listing.
type GetRestaurantReviewsQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}
