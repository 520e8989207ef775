// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs optimistic concurrency control on updates. Lines
// live in a child table and are immutable after placement.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryAgentID     *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"type:varchar(32);index"`
	DeliveryAddress     string
	Subtotal            float64
	DeliveryFee         float64
	TotalAmount         float64
	PaymentMethod       string `gorm:"type:varchar(32)"`
	PaymentDone         bool
	SpecialInstructions string
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	Version             int
	Lines               []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced line of an order. Name and price are the
// snapshots taken at placement, never re-read from the catalog.
type OrderLineDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	MenuItemName string
	UnitPrice    float64
	Quantity     int
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.DeliveryAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   line.MenuItemID().Bytes(),
			MenuItemName: line.MenuItemName(),
			UnitPrice:    line.UnitPrice(),
			Quantity:     line.Quantity(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		DeliveryAgentID:     agentID,
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress().String(),
		Subtotal:            aggregate.Subtotal(),
		DeliveryFee:         aggregate.DeliveryFee(),
		TotalAmount:         aggregate.TotalAmount(),
		PaymentMethod:       aggregate.PaymentMethod(),
		PaymentDone:         aggregate.PaymentDone(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Version:             aggregate.Version(),
		Lines:               lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, lines included, via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.DeliveryAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	address, err := kernel.NewAddress(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(
			menuItemID, lineDTO.MenuItemName, lineDTO.UnitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		address,
		dto.PaymentMethod,
		dto.SpecialInstructions,
		dto.DeliveryFee,
		lines,
		status,
		dto.PaymentDone,
		agentID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
