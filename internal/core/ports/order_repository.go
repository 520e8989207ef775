// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by their participants and lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: if the stored row has moved on
	// since the aggregate was loaded, Update fails with a StaleAggregateError
	// and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves every order placed against the given
	// restaurant, newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllByAgent retrieves every order bound to the given delivery agent,
	// newest first.
	GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves every order currently in the given lifecycle
	// status, newest first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll retrieves every order in the system, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
