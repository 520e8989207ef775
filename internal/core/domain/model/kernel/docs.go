// Package kernel provides shared value objects used across the food-ordering
// domain model.
//
// The package includes:
//   - UUID: An immutable identifier wrapping github.com/google/uuid
//   - Address: A validated, non-blank delivery address
//
// Value objects in this package are immutable, compared by value, and can only
// be created through their factory functions, which enforce validation at
// construction time.
package kernel
