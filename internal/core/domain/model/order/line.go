package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine constructor")

// Line is one menu item plus quantity within an order. The unit price is a
// snapshot taken at order time: later catalog price changes never affect a
// placed order. A Line belongs exclusively to one Order and has no
// independent lifecycle.
type Line struct {
	menuItemID    kernel.UUID
	menuItemName  string
	unitPrice     float64
	quantity      int
	isConstructed bool
}

// NewLine creates a validated Line with the given price snapshot.
//
// Validation rules:
//   - menuItemID must be a constructed UUID
//   - menuItemName must be non-empty (display snapshot, like the price)
//   - unitPrice must not be negative
//   - quantity must be a positive integer
func NewLine(menuItemID kernel.UUID, menuItemName string, unitPrice float64, quantity int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if menuItemName == "" {
		return Line{}, errs.NewValueIsRequiredError("menuItemName")
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		menuItemID:    menuItemID,
		menuItemName:  menuItemName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// MenuItemID returns the referenced menu item's id.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// MenuItemName returns the menu item name captured at order time.
func (l Line) MenuItemName() string {
	return l.menuItemName
}

// UnitPrice returns the price captured at order time.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() float64 {
	return l.unitPrice * float64(l.quantity)
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}
