// Package services provides domain services that implement business logic
// spanning multiple aggregates in the logistics engine.
//
// The package includes:
//   - AccessPolicy: the closed capability model and the pure role x plan
//     mapping used to gate privileged batch coordinator operations
//
// Domain services hold no state of their own and coordinate between
// aggregates following Domain-Driven Design principles.
package services
