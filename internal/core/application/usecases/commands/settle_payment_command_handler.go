package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// SettlePaymentCommandHandler marks an order's payment as done.
type SettlePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewSettlePaymentCommandHandler creates a handler for payment settlement.
func NewSettlePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the settlement command. Settling twice is a no-op;
// settling a cancelled order fails.
func (h *SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
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

	if decision := h.policy.CanSettlePayment(restaurant.OwnerID, cmd.Actor()); !decision.Allowed() {
		return decision.Err()
	}

	if err = aggregate.SettlePayment(); err != nil {
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
