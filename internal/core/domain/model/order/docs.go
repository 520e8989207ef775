// Package order provides the order aggregate and its lifecycle state machine
// for the food-ordering system.
//
// The package includes:
//   - Order: The aggregate root owning line items, pricing, and lifecycle state
//   - Line: A menu item plus quantity with a price snapshot taken at order time
//   - Status: A state machine with an explicit transition table
//
// Key business rules:
//   - An order always has at least one line; lines never outlive their order
//   - subtotal is the sum of line subtotals; total is subtotal plus delivery fee
//   - PENDING is the only initial status; DELIVERED and CANCELLED are terminal
//   - Status changes are role-gated per transition; cancel is additionally
//     ownership-gated to the order's own customer and legal only from PENDING
//   - The delivery agent is bound exactly once, by the dispatch transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
