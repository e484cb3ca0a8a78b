// Package kernel provides core domain primitives for the logistics engine.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: an exact-decimal amount used for fees, insurance, and reconciliation
//   - ShipmentReference: the human-readable reference minted from the per-agency
//     sequence counter
//   - TripKey: the deterministic string identifying a route + time + date instance
//
// These primitives enforce domain invariants and validation rules, are immutable,
// and are safe for concurrent use.
package kernel
