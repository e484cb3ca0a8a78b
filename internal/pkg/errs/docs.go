// Package errs provides standardized error types for the logistics engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error family per failure class in the engine's taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed
//     input or an illegal state transition on the entity itself (never retried)
//   - ObjectNotFoundError: a referenced entity is absent
//   - StateIsInvalidError: a precondition on a different entity's status is not met
//   - NotAuthorizedError: the caller's role is not permitted for a privileged operation
//   - ConcurrencyConflictError: optimistic-concurrency retries exhausted; the caller
//     may retry the whole logical operation
//   - VersionIsInvalidError: aggregate version mismatch during persistence
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Every public operation of the engine fails with exactly one error from this
// taxonomy; there is no partial-success return shape.
package errs
