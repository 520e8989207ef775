package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired   = errors.New("order must contain at least one item")
	ErrItemQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// OrderItem is a single requested menu item with its quantity. Name and price
// are deliberately absent: the handler snapshots them from the catalog so the
// caller cannot set their own prices.
type OrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PlaceOrderCommand represents a customer's request to place an order against
// a restaurant. Encapsulates the requested items, the delivery destination
// and the chosen payment method.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, restaurantID,
//	    "42 MG Road", "CASH", "ring twice", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	deliveryAddress     kernel.Address
	paymentMethod       string
	specialInstructions string
	items               []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all ids are valid, the address is not blank, a payment
// method is given and every requested item has a positive quantity.
func NewPlaceOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress, paymentMethod, specialInstructions string,
	items []OrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer's id.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's id.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the validated delivery destination.
func (c PlaceOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// SpecialInstructions returns the optional free-text instructions.
func (c PlaceOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// Items returns the requested items.
func (c PlaceOrderCommand) Items() []OrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	address, err := kernel.NewAddress(deliveryAddress)
	if err != nil {
		return err
	}

	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
