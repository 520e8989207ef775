// Package services provides domain services for the food-ordering system:
// business rules that span aggregates and don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - OrderAccessPolicy: Typed per-operation capability checks deciding whether
//     an actor may read or mutate an order
//   - RecomputeRating: A pure function deriving a restaurant's rating aggregate
//     from its reviews
package services
