package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle. It owns its line items
// and is immutable at creation except through the status state machine and
// payment settlement.
//
// Order maintains these invariants:
//   - At least one line item; lines are order-preserving and never change
//   - subtotal equals the sum of line subtotals
//   - totalAmount equals subtotal plus deliveryFee
//   - deliveryAgent is unset until the dispatch transition binds it
//   - createdAt is set once; updatedAt changes on every mutation
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id                  kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	lines               []Line
	status              Status
	deliveryAddress     kernel.Address
	subtotal            float64
	deliveryFee         float64
	totalAmount         float64
	paymentMethod       string
	paymentDone         bool
	specialInstructions string
	deliveryAgentID     *kernel.UUID
	createdAt           time.Time
	updatedAt           time.Time
	version             int

	isConstructed bool
}

// NewOrder creates a new Order in PENDING status with validation. This is the
// only way to create an order for a fresh placement; persistence uses
// RestoreOrder instead.
//
// The subtotal is computed from the line snapshots and the total from the
// subtotal plus the restaurant-configured delivery fee; neither is ever
// accepted from the caller.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	paymentMethod string,
	specialInstructions string,
	deliveryFee float64,
	lines []Line,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setPaymentMethod(paymentMethod),
		order.setDeliveryFee(deliveryFee),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.specialInstructions = specialInstructions
	order.computeTotals()

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// whole aggregate, including the status/agent consistency rule, so corrupt
// rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	paymentMethod string,
	specialInstructions string,
	deliveryFee float64,
	lines []Line,
	status Status,
	paymentDone bool,
	deliveryAgentID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	order, err := NewOrder(
		id, customerID, restaurantID, deliveryAddress, paymentMethod, specialInstructions, deliveryFee, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveAgent(deliveryAgentID != nil); err != nil {
		return nil, err
	}
	if deliveryAgentID != nil {
		if err = deliveryAgentID.Validate(); err != nil {
			return nil, err
		}
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not greater than 0", version))
	}

	order.status = status
	order.paymentDone = paymentDone
	order.deliveryAgentID = deliveryAgentID
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	order.version = version

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the id of the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Lines returns the order's line items in placement order.
// The returned slice is a copy; lines cannot be mutated from outside.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the delivery address captured at placement.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// Subtotal returns the sum of the line subtotals.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// DeliveryFee returns the restaurant-configured fee captured at placement.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// TotalAmount returns subtotal plus delivery fee.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaymentMethod returns the payment method, e.g. "CASH".
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentDone reports whether payment has been settled.
func (o *Order) PaymentDone() bool {
	return o.paymentDone
}

// SpecialInstructions returns the optional free-text instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// DeliveryAgent returns the bound delivery agent's id.
// Returns nil before the dispatch transition.
func (o *Order) DeliveryAgent() *kernel.UUID {
	return o.deliveryAgentID
}

// CreatedAt returns the placement timestamp. Set once, never updated.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version of the aggregate.
// The store rejects updates whose version no longer matches the stored row.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to next on behalf of actor, enforcing the
// state machine's legality and actor rules:
//
//   - The transition must be reachable per the transition table
//     (InvalidTransitionError otherwise; terminal statuses have no exits)
//   - The actor's role must be permitted for that transition
//     (UnauthorizedError otherwise; ADMIN is permitted everywhere)
//   - Cancelling as a customer requires owning the order
//   - Completing delivery as an agent requires being the bound agent
//
// On the dispatch transition the acting identity is bound as the delivery
// agent. This is the only path by which an agent becomes attached to an order.
// On success updatedAt is refreshed.
func (o *Order) TransitionTo(next Status, actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}

	if !roleAllowed(o.status.RolesFor(next), actor.Role()) {
		return errs.NewUnauthorizedErrorWithCause(
			actor.ID().String(),
			fmt.Sprintf("transition order to %s", next.String()),
			fmt.Errorf("role %s is not permitted", actor.Role().String()),
		)
	}

	if next == Cancelled && actor.Is(identity.RoleCustomer) && !o.customerID.IsEqual(actor.ID()) {
		return errs.NewUnauthorizedErrorWithCause(
			actor.ID().String(),
			"cancel order",
			errors.New("order belongs to another customer"),
		)
	}

	if next == Delivered && actor.Is(identity.RoleDeliveryAgent) {
		if o.deliveryAgentID == nil || !o.deliveryAgentID.IsEqual(actor.ID()) {
			return errs.NewUnauthorizedErrorWithCause(
				actor.ID().String(),
				"complete delivery",
				errors.New("order is assigned to another agent"),
			)
		}
	}

	if next == OutForDelivery {
		agentID := actor.ID()
		o.deliveryAgentID = &agentID
	}

	o.status = next
	o.touch()
	return nil
}

// Cancel is the customer-facing specialization of the cancel transition.
// In addition to the state machine rules it re-verifies that the caller is
// the order's own customer (UnauthorizedError otherwise) and that the current
// status is exactly PENDING (InvalidTransitionError for anything else,
// including a second cancel).
func (o *Order) Cancel(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if !o.customerID.IsEqual(customerID) {
		return errs.NewUnauthorizedErrorWithCause(
			customerID.String(),
			"cancel order",
			errors.New("order belongs to another customer"),
		)
	}

	if o.status != Pending {
		return errs.NewInvalidTransitionError(o.status.String(), Cancelled.String())
	}

	o.status = Cancelled
	o.touch()
	return nil
}

// SettlePayment marks the order as paid. Settling a cancelled order is
// rejected; settling an already-paid order is a no-op.
func (o *Order) SettlePayment() error {
	if o.status == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentDone", errors.New("cannot settle payment of a cancelled order"))
	}
	if o.paymentDone {
		return nil
	}

	o.paymentDone = true
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) computeTotals() {
	subtotal := 0.0
	for _, line := range o.lines {
		subtotal += line.Subtotal()
	}
	o.subtotal = subtotal
	o.totalAmount = subtotal + o.deliveryFee
}

func roleAllowed(roles []identity.Role, role identity.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%v is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
