// Package kafka provides the Kafka-backed implementation of the order event
// publisher port. Events are keyed by order id so all changes of one order
// land in the same partition, in order.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire format of an order lifecycle event.
type orderChangedEvent struct {
	OrderID         string    `json:"orderId"`
	CustomerID      string    `json:"customerId"`
	RestaurantID    string    `json:"restaurantId"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"totalAmount"`
	PaymentDone     bool      `json:"paymentDone"`
	DeliveryAgentID *string   `json:"deliveryAgentId,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// OrderChangedPublisher publishes order lifecycle events to a Kafka topic.
type OrderChangedPublisher struct {
	writer *kafka.Writer
}

var _ ports.OrderEventPublisher = (*OrderChangedPublisher)(nil)

// NewOrderChangedPublisher creates a publisher writing to the given brokers
// and topic.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &OrderChangedPublisher{writer: writer}
}

// PublishOrderChanged emits an event describing the order's current state.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount(),
		PaymentDone:  aggregate.PaymentDone(),
		OccurredAt:   time.Now().UTC(),
	}
	if agentID := aggregate.DeliveryAgent(); agentID != nil {
		s := agentID.String()
		event.DeliveryAgentID = &s
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
