package commands

import (
	"context"
	"fmt"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the requested items against the catalog, snapshots their names and
// prices plus the restaurant's delivery fee into the new order, and persists
// it in PENDING status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for the best-effort order-changed event.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher, logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Unknown or unavailable menu items, or items of another restaurant, fail the
// whole command; no partial order is ever written. The order-changed event is
// published after commit and its failure only logs.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	lines, err := h.buildLines(ctx, uow, cmd)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		cmd.SpecialInstructions(),
		restaurant.DeliveryFee,
		lines,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, aggregate)
	return nil
}

func (h *PlaceOrderCommandHandler) buildLines(
	ctx context.Context, uow OrderUoW, cmd PlaceOrderCommand,
) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		ids = append(ids, item.MenuItemID)
	}

	menuItems, err := uow.RestaurantRepository().GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]ports.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID] = menuItem
	}

	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menuItem, ok := byID[item.MenuItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItemId", item.MenuItemID)
		}
		if !menuItem.RestaurantID.IsEqual(cmd.RestaurantID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %s belongs to another restaurant", item.MenuItemID))
		}
		if !menuItem.Available {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %s is not available", item.MenuItemID))
		}

		line, err := order.NewLine(menuItem.ID, menuItem.Name, menuItem.Price, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (h *PlaceOrderCommandHandler) publish(ctx context.Context, aggregate *order.Order) {
	if err := h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.Warn("failed to publish order changed event",
			slog.String("orderId", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
