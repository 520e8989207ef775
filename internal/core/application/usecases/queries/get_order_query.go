// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by id on behalf of the acting
// identity. Whether the actor may see the order is decided by the access
// policy in the handler.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(orderID kernel.UUID, actor identity.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the acting identity.
func (q GetOrderQuery) Actor() identity.Actor {
	return q.actor
}

// OrderLineView is one priced line in the order read model. Name and price
// are the snapshots taken at placement, not the catalog's current values.
type OrderLineView struct {
	MenuItemID   kernel.UUID
	MenuItemName string
	UnitPrice    float64
	Quantity     int
	Subtotal     float64
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	RestaurantID        kernel.UUID
	RestaurantName      string
	Status              order.Status
	DeliveryAddress     string
	Subtotal            float64
	DeliveryFee         float64
	TotalAmount         float64
	PaymentMethod       string
	PaymentDone         bool
	SpecialInstructions string
	DeliveryAgentID     *kernel.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Lines               []OrderLineView
}
