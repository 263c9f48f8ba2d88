package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per error kind. Concrete error structs unwrap to
// their sentinel so callers can classify with errors.Is.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrValueIsInvalid = errors.New("value is invalid")
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidState   = errors.New("invalid state")
	ErrTransferFailed = errors.New("transfer failed")
)

// sanitize removes newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// AuthorizationError indicates that the caller does not satisfy the
// role, ownership, or order-ownership requirement of an operation.
type AuthorizationError struct {
	// Requirement describes what the caller would need to satisfy,
	// e.g. "only the owner can add employees".
	Requirement string

	Cause error
}

// NewAuthorizationError creates an AuthorizationError for the given requirement.
func NewAuthorizationError(requirement string) *AuthorizationError {
	return &AuthorizationError{Requirement: requirement}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an
// underlying cause.
func NewAuthorizationErrorWithCause(requirement string, cause error) *AuthorizationError {
	return &AuthorizationError{Requirement: requirement, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, sanitize(e.Requirement), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, sanitize(e.Requirement))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrUnauthorized
}

// ValidationError indicates that an input value is missing, zero, or not
// parseable as a member of its closed set.
type ValidationError struct {
	// ParamName names the offending parameter.
	ParamName string

	Cause error
}

// NewValidationError creates a ValidationError for the given parameter.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an
// underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValueIsInvalid
}

// NotFoundError indicates that a referenced object (order, employee)
// does not exist.
type NotFoundError struct {
	// ParamName names the kind of object that was looked up.
	ParamName string

	// ID is the identifier the lookup used.
	ID any

	Cause error
}

// NewNotFoundError creates a NotFoundError for the given object kind and id.
func NewNotFoundError(paramName string, id any) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping an
// underlying cause.
func NewNotFoundErrorWithCause(paramName string, id any, cause error) *NotFoundError {
	return &NotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateError indicates that an order exists but is not in the required
// predecessor status for the requested transition. It carries enough
// context for the caller to self-correct.
type StateError struct {
	OrderID uint64

	// Required is the status the transition demands.
	Required string

	// Actual is the status the order is currently in.
	Actual string
}

// NewStateError creates a StateError for the given order and statuses.
func NewStateError(orderID uint64, required, actual string) *StateError {
	return &StateError{OrderID: orderID, Required: required, Actual: actual}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: order %d must be in %s status, actual status is %s",
		ErrInvalidState, e.OrderID, sanitize(e.Required), sanitize(e.Actual))
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// TransferError indicates that an escrow value movement failed. It aborts
// the whole enclosing operation; ledger and escrow state roll back together.
type TransferError struct {
	OrderID uint64

	Cause error
}

// NewTransferError creates a TransferError for the given order.
func NewTransferError(orderID uint64, cause error) *TransferError {
	return &TransferError{OrderID: orderID, Cause: cause}
}

func (e *TransferError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %d (cause: %s)", ErrTransferFailed, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: order %d", ErrTransferFailed, e.OrderID)
}

func (e *TransferError) Unwrap() error {
	return ErrTransferFailed
}
