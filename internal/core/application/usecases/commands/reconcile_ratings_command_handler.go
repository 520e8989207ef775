package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// ReconcileRatingsCommandHandler recomputes every restaurant's rating
// aggregate from its stored reviews. Ratings are normally updated inline
// when a review lands; the sweep repairs drift after manual data fixes or
// partial failures.
type ReconcileRatingsCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewReconcileRatingsCommandHandler creates a handler for rating reconciliation.
func NewReconcileRatingsCommandHandler(uowFactory ReviewUoWFactory) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command in one transaction.
func (h *ReconcileRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileRatingsCommand) error {
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

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, restaurant := range restaurants {
		ratings, err := uow.ReviewRepository().GetRatingsByRestaurant(ctx, restaurant.ID)
		if err != nil {
			return err
		}

		rating := services.RecomputeRating(ratings)
		if rating.Rating == restaurant.Rating && rating.ReviewCount == restaurant.ReviewCount {
			continue
		}

		if err = uow.RestaurantRepository().UpdateRating(ctx, restaurant.ID, rating); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
