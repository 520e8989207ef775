package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID}
	actor := newActor(t, ownerID, identity.RoleRestaurantOwner)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Confirmed, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*order.Order)
				assert.Equal(t, order.Confirmed, updated.Status())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, services.NewOrderAccessPolicy(), publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ForeignOwnerDenied(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID()}
	actor := newActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Confirmed, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(restaurant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, services.NewOrderAccessPolicy(), new(MockOrderEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Pending, aggregate.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID}
	actor := newActor(t, ownerID, identity.RoleRestaurantOwner)

	// PENDING -> DELIVERED skips the whole pipeline.
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Delivered, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(restaurant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, services.NewOrderAccessPolicy(), new(MockOrderEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestUpdateOrderStatusCommandHandler_Handle_StaleAggregate(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID}
	actor := newActor(t, ownerID, identity.RoleRestaurantOwner)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Confirmed, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	staleErr := errs.NewStaleAggregateError("orderId", aggregate.ID(), aggregate.Version())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(restaurant, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(staleErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, services.NewOrderAccessPolicy(), new(MockOrderEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStaleAggregate)
}
