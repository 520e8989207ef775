package kernel

import (
	"strings"

	"foodorder/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created via
// NewAddress. Returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object representing a delivery address.
//
// An Address must be non-blank: a value consisting only of whitespace is
// rejected at construction. Surrounding whitespace is trimmed so that two
// addresses differing only in padding compare equal.
type Address struct {
	value         string
	isConstructed bool
}

// NewAddress creates a validated Address from the given string.
// Returns a ValueIsRequiredError if the string is blank.
func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError("deliveryAddress")
	}

	return Address{
		value:         trimmed,
		isConstructed: true,
	}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their normalized text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}
