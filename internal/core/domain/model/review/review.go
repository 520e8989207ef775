// Package review provides the restaurant review entity. Reviews feed the
// restaurant rating aggregate, which is always recomputed from them rather
// than mutated in place.
package review

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1
	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when a Review was not created through
// NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a customer's rating of a restaurant with an optional comment.
type Review struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	rating       int
	comment      string
	createdAt    time.Time

	isConstructed bool
}

// NewReview creates a validated Review. Rating must lie in [MinRating, MaxRating].
func NewReview(id, customerID, restaurantID kernel.UUID, rating int, comment string) (*Review, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		rating:        rating,
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(
	id, customerID, restaurantID kernel.UUID, rating int, comment string, createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, customerID, restaurantID, rating, comment)
	if err != nil {
		return nil, err
	}

	r.createdAt = createdAt
	return r, nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the reviewing customer's id.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// RestaurantID returns the reviewed restaurant's id.
func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// Rating returns the rating in [MinRating, MaxRating].
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the submission timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// Validate ensures the Review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}
