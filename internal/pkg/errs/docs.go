// Package errs provides standardized error types for the cafe delivery backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the order workflow
// can surface:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - InvalidTransitionError: an order status change is not legal
//   - TransactionConflictError: an atomic write lost to a concurrent writer
//   - RemoteUnavailableError: the backing store could not be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All errors propagate to the immediate caller; the core never retries and
// never swallows a failure.
package errs
