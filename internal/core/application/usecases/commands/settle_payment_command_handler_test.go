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

func TestSettlePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, customerID, restaurantID)
	ownerID := kernel.NewUUID()
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID}
	actor := newActor(t, ownerID, identity.RoleRestaurantOwner)

	cmd, err := commands.NewSettlePaymentCommand(aggregate.ID(), actor)
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
				assert.True(t, updated.PaymentDone())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(nil).Once()

	h := commands.NewSettlePaymentCommandHandler(
		factory, services.NewOrderAccessPolicy(), publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSettlePaymentCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, customerID, restaurantID)
	require.NoError(t, aggregate.Cancel(customerID))
	ownerID := kernel.NewUUID()
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID}
	actor := newActor(t, ownerID, identity.RoleRestaurantOwner)

	cmd, err := commands.NewSettlePaymentCommand(aggregate.ID(), actor)
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

	h := commands.NewSettlePaymentCommandHandler(
		factory, services.NewOrderAccessPolicy(), new(MockOrderEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.False(t, aggregate.PaymentDone())
}

func TestSettlePaymentCommandHandler_Handle_CustomerDenied(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	aggregate := newPendingOrder(t, customerID, restaurantID)
	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID()}

	// Settlement is the restaurant confirming payment; even the customer who
	// placed the order may not flip the flag.
	actor := newActor(t, customerID, identity.RoleCustomer)

	cmd, err := commands.NewSettlePaymentCommand(aggregate.ID(), actor)
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

	h := commands.NewSettlePaymentCommandHandler(
		factory, services.NewOrderAccessPolicy(), new(MockOrderEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
