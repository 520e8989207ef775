package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles status changes on existing orders.
// Authorization happens in two layers: the access policy gates the ownership
// dimension (whose restaurant, whose assignment), then the order's state
// machine decides whether the actor's role may perform the transition itself.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
// The load-check-transition-store sequence runs inside one transaction; the
// repository's versioned update turns a lost race into a StaleAggregateError
// instead of a silently overwritten state.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	if decision := h.policy.CanMutateStatus(aggregate, restaurant.OwnerID, cmd.Actor()); !decision.Allowed() {
		return decision.Err()
	}

	if err = aggregate.TransitionTo(cmd.Next(), cmd.Actor()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.Warn("failed to publish order changed event",
			slog.String("orderId", aggregate.ID().String()),
			slog.Any("error", err))
	}

	return nil
}
