package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// The customer path goes through the order's own Cancel, which re-verifies
// ownership; the admin path uses the general transition.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher, logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Any status other than PENDING fails with InvalidTransitionError, a second
// cancel included.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if cmd.Actor().Is(identity.RoleCustomer) {
		err = aggregate.Cancel(cmd.Actor().ID())
	} else {
		err = aggregate.TransitionTo(order.Cancelled, cmd.Actor())
	}
	if err != nil {
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
