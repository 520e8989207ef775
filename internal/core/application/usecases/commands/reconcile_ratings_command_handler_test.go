package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileRatingsCommandHandler_Handle_UpdatesDriftedRestaurants(t *testing.T) {
	ctx := t.Context()
	driftedID := kernel.NewUUID()
	currentID := kernel.NewUUID()

	restaurants := []ports.Restaurant{
		{ID: driftedID, OwnerID: kernel.NewUUID(), Rating: 3.0, ReviewCount: 1},
		{ID: currentID, OwnerID: kernel.NewUUID(), Rating: 4.5, ReviewCount: 2},
	}

	cmd, err := commands.NewReconcileRatingsCommand()
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		restaurantRepo.On("GetAll", ctx).Return(restaurants, nil),
		reviewRepo.On("GetRatingsByRestaurant", ctx, driftedID).Return([]int{5, 4}, nil),
		restaurantRepo.On("UpdateRating", ctx, driftedID,
			services.RestaurantRating{Rating: 4.5, ReviewCount: 2}).Return(nil),
		reviewRepo.On("GetRatingsByRestaurant", ctx, currentID).Return([]int{5, 4}, nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)
	uow.On("ReviewRepository").Return(reviewRepo)
	uow.On("RestaurantRepository").Return(restaurantRepo)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewReconcileRatingsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestReconcileRatingsCommandHandler_Handle_EmptyCatalog(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReconcileRatingsCommand()
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		restaurantRepo.On("GetAll", ctx).Return([]ports.Restaurant{}, nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)
	uow.On("RestaurantRepository").Return(restaurantRepo)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewReconcileRatingsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestReconcileRatingsCommandHandler_Handle_UpdateFailureAborts(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewReconcileRatingsCommand()
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		restaurantRepo.On("GetAll", ctx).Return([]ports.Restaurant{
			{ID: restaurantID, OwnerID: kernel.NewUUID(), Rating: 2.0, ReviewCount: 1},
		}, nil),
		reviewRepo.On("GetRatingsByRestaurant", ctx, restaurantID).Return([]int{5}, nil),
		restaurantRepo.On("UpdateRating", ctx, restaurantID,
			services.RestaurantRating{Rating: 5.0, ReviewCount: 1}).Return(assert.AnError),
		uow.On("Rollback", ctx).Return(nil),
	)
	uow.On("ReviewRepository").Return(reviewRepo)
	uow.On("RestaurantRepository").Return(restaurantRepo)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewReconcileRatingsCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, assert.AnError)
	uow.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}
