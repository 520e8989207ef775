package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrSettlePaymentCommandIsNotConstructed = errors.New(
	"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
)

// SettlePaymentCommand represents a request to mark an order's payment as
// done. No gateway is involved: payment happens out of band and this records
// the fact.
type SettlePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

// NewSettlePaymentCommand creates a command to settle an order's payment.
func NewSettlePaymentCommand(orderID kernel.UUID, actor identity.Actor) (SettlePaymentCommand, error) {
	cmd := SettlePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return SettlePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c SettlePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c SettlePaymentCommand) Actor() identity.Actor {
	return c.actor
}

func (c *SettlePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SettlePaymentCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
