// Package identity provides the authenticated-identity model consumed by the
// order lifecycle: user roles, the Actor value object describing who is
// performing an operation, and the User aggregate behind registration.
package identity

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role represents the authorization role attached to an authenticated user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel their own pending orders.
	RoleCustomer

	// RoleRestaurantOwner manages the orders of restaurants they own.
	RoleRestaurantOwner

	// RoleDeliveryAgent delivers orders assigned to them at dispatch.
	RoleDeliveryAgent

	// RoleAdmin has unconditional access to all orders.
	RoleAdmin
)

// getRoleStrings returns the wire-format names for all roles.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "UNKNOWN",
		RoleCustomer:        "CUSTOMER",
		RoleRestaurantOwner: "RESTAURANT_OWNER",
		RoleDeliveryAgent:   "DELIVERY_AGENT",
		RoleAdmin:           "ADMIN",
	}
}

// getValidRoleStrings returns only the roles that may appear on real users.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "CUSTOMER",
		RoleRestaurantOwner: "RESTAURANT_OWNER",
		RoleDeliveryAgent:   "DELIVERY_AGENT",
		RoleAdmin:           "ADMIN",
	}
}

// RoleFromString parses a role from its wire-format name
// (CUSTOMER, RESTAURANT_OWNER, DELIVERY_AGENT, ADMIN).
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-format name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
