package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// legality and the roles permitted to perform each transition are declared
// in one place rather than inferred from string comparisons.
//
// State transitions (permitted roles in parentheses, ADMIN always included):
//
//	PENDING ──confirm──> CONFIRMED        (RESTAURANT_OWNER)
//	PENDING ──cancel───> CANCELLED        (CUSTOMER, owner of the order)
//	CONFIRMED ──prep───> PREPARING        (RESTAURANT_OWNER)
//	PREPARING ──dispatch──> OUT_FOR_DELIVERY  (RESTAURANT_OWNER or DELIVERY_AGENT; binds the acting agent)
//	OUT_FOR_DELIVERY ──complete──> DELIVERED  (assigned DELIVERY_AGENT)
//
// DELIVERED and CANCELLED are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the sole initial status of a freshly placed order.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order left the restaurant with a bound
	// delivery agent.
	OutForDelivery

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal state of a customer-cancelled pending order.
	Cancelled
)

// getStatusStrings returns the wire-format names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// transitions is the adjacency table of the order state machine:
// current status -> reachable statuses -> roles permitted to perform the move.
// ADMIN has unconditional mutation access and appears in every entry.
func transitions() map[Status]map[Status][]identity.Role {
	return map[Status]map[Status][]identity.Role{
		Pending: {
			Confirmed: {identity.RoleRestaurantOwner, identity.RoleAdmin},
			Cancelled: {identity.RoleCustomer, identity.RoleAdmin},
		},
		Confirmed: {
			Preparing: {identity.RoleRestaurantOwner, identity.RoleAdmin},
		},
		Preparing: {
			OutForDelivery: {identity.RoleRestaurantOwner, identity.RoleDeliveryAgent, identity.RoleAdmin},
		},
		OutForDelivery: {
			Delivered: {identity.RoleDeliveryAgent, identity.RoleAdmin},
		},
	}
}

// StatusFromString parses a status from its wire-format name
// (PENDING, CONFIRMED, PREPARING, OUT_FOR_DELIVERY, DELIVERED, CANCELLED).
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo checks whether next is reachable from this status per the
// transition table, regardless of who is asking.
//
// Returns:
//   - nil if the transition is legal
//   - InvalidTransitionError otherwise, including any move out of a terminal
//     status and self-transitions
func (s Status) CanTransitionTo(next Status) error {
	if _, ok := transitions()[s][next]; !ok {
		return errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return nil
}

// RolesFor returns the roles permitted to perform the transition from this
// status to next. Returns nil when the transition itself is illegal.
func (s Status) RolesFor(next Status) []identity.Role {
	return transitions()[s][next]
}

// ValidateCanHaveAgent validates the consistency between order status and
// delivery-agent assignment: the agent is bound by the dispatch transition,
// so it must be present from OUT_FOR_DELIVERY onwards and absent before.
func (s Status) ValidateCanHaveAgent(agent bool) error {
	assigned := s == OutForDelivery || s == Delivered

	if agent && !assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a delivery agent", s.String()),
		)
	}

	if !agent && assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no delivery agent", s.String()),
		)
	}

	return nil
}
