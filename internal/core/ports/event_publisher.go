package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher emits order lifecycle events to interested consumers.
// Publishing is best effort: a failed publish must never fail the command
// that triggered it.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event describing the order's current state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
