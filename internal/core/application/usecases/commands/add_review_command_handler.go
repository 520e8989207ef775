package commands

import (
	"context"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/services"
)

// AddReviewCommandHandler persists a new review and recomputes the reviewed
// restaurant's rating aggregate in the same transaction, so the stored rating
// never drifts from the reviews it summarizes.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review submission.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. The restaurant must exist; the rating
// is recomputed from the full review set including the new one.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.Rating(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	ratings, err := uow.ReviewRepository().GetRatingsByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return err
	}

	rating := services.RecomputeRating(ratings)
	if err = uow.RestaurantRepository().UpdateRating(ctx, restaurant.ID, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
