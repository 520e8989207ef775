package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The access policy decides visibility before any data leaves the handler.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query. An order hidden from the actor fails with
// UnauthorizedError rather than pretending it does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			r.owner_id,
			r.name,
			o.status,
			o.delivery_address,
			o.subtotal,
			o.delivery_fee,
			o.total_amount,
			o.payment_method,
			o.payment_done,
			o.special_instructions,
			o.delivery_agent_id,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var response GetOrderQueryResponse
	var id, customerID, restaurantID, ownerID uuid.UUID
	var agentID uuid.NullUUID
	var status string

	err := row.Scan(
		&id,
		&customerID,
		&restaurantID,
		&ownerID,
		&response.RestaurantName,
		&status,
		&response.DeliveryAddress,
		&response.Subtotal,
		&response.DeliveryFee,
		&response.TotalAmount,
		&response.PaymentMethod,
		&response.PaymentDone,
		&response.SpecialInstructions,
		&agentID,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	restaurantOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if agentID.Valid {
		agent, agentErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if agentErr != nil {
			return GetOrderQueryResponse{}, agentErr
		}
		response.DeliveryAgentID = &agent
	}
	if response.Status, err = order.StatusFromString(status); err != nil {
		return GetOrderQueryResponse{}, err
	}

	decision := h.policy.CanViewOrderRecord(
		response.CustomerID, restaurantOwnerID, response.DeliveryAgentID, query.Actor())
	if !decision.Allowed() {
		return GetOrderQueryResponse{}, decision.Err()
	}

	if response.Lines, err = h.loadLines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			menu_item_name,
			unit_price,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var line OrderLineView
		var menuItemID uuid.UUID

		if err = rows.Scan(&menuItemID, &line.MenuItemName, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, err
		}

		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		line.Subtotal = line.UnitPrice * float64(line.Quantity)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
