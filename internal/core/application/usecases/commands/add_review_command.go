package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents a customer's request to review a restaurant.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID     kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	rating       int
	comment      string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to add a restaurant review.
// Rating must lie in [review.MinRating, review.MaxRating].
func NewAddReviewCommand(
	reviewID, customerID, restaurantID kernel.UUID, rating int, comment string,
) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setRating(rating),
	); err != nil {
		return AddReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the new review's id.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// CustomerID returns the reviewing customer's id.
func (c AddReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the reviewed restaurant's id.
func (c AddReviewCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Rating returns the rating value.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddReviewCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}

	c.rating = rating
	return nil
}
