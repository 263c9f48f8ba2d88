// Package errs provides standardized error types for the supply chain
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error kind per failure class of the domain:
//   - AuthorizationError: the caller lacks the required role or ownership
//   - ValidationError: an input value is missing or invalid
//   - NotFoundError: a referenced order or employee does not exist
//   - StateError: an order is not in the required status for a transition
//   - TransferError: an escrow value movement failed
//
// Each error kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Callers classify failures with errors.Is against the sentinel of a kind,
// never by comparing message strings.
package errs
