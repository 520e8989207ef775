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

// ListOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB, policy services.OrderAccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the listing query for the requested scope, newest first.
// Ownership is verified before any rows are read; for the restaurant scope
// that means resolving the restaurant's owner first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(ctx, query); err != nil {
		return nil, err
	}

	baseQuery := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			r.name,
			o.status,
			o.total_amount,
			o.payment_done,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
	`

	var rows *sql.Rows
	var err error
	switch query.Scope() {
	case ScopeCustomer:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.customer_id = ? ORDER BY o.created_at DESC`,
			query.ScopeID().Bytes()).Rows()
	case ScopeRestaurant:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.restaurant_id = ? ORDER BY o.created_at DESC`,
			query.ScopeID().Bytes()).Rows()
	case ScopeAgent:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE o.delivery_agent_id = ? ORDER BY o.created_at DESC`,
			query.ScopeID().Bytes()).Rows()
	case ScopeAll:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery + `ORDER BY o.created_at DESC`).Rows()
	default:
		return nil, errs.NewValueIsInvalidError("scope")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var response ListOrdersQueryResponse
		var id, customerID, restaurantID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&response.RestaurantName,
			&status,
			&response.TotalAmount,
			&response.PaymentDone,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if response.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) authorize(ctx context.Context, query ListOrdersQuery) error {
	switch query.Scope() {
	case ScopeCustomer:
		return h.policy.CanListCustomerOrders(query.ScopeID(), query.Actor()).Err()
	case ScopeRestaurant:
		ownerID, err := h.restaurantOwner(ctx, query.ScopeID())
		if err != nil {
			return err
		}
		return h.policy.CanListRestaurantOrders(ownerID, query.Actor()).Err()
	case ScopeAgent:
		return h.policy.CanListAgentOrders(query.ScopeID(), query.Actor()).Err()
	case ScopeAll:
		return h.policy.CanListAllOrders(query.Actor()).Err()
	default:
		return errs.NewValueIsInvalidError("scope")
	}
}

func (h ListOrdersQueryHandler) restaurantOwner(ctx context.Context, restaurantID kernel.UUID) (kernel.UUID, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT owner_id FROM restaurants WHERE id = ?
	`, restaurantID.Bytes()).Row()

	var ownerID uuid.UUID
	if err := row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("restaurantId", restaurantID)
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(ownerID[:])
}
