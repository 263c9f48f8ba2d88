package kernel

import (
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIdentityIsNotConstructed indicates a zero-value Identity. A zero
// identity is never a valid actor or recipient anywhere in the system.
var ErrIdentityIsNotConstructed = errs.NewValidationError(
	"Identity must be created via NewIdentity or IdentityFromString",
)

// Identity is a value object representing an opaque, globally unique
// principal reference. It identifies the owner, the company wallet,
// employees, and customers, and doubles as a fund-transfer address in the
// escrow bank.
//
// Identity wraps github.com/google/uuid to provide domain-specific behavior
// and ensure immutability. The zero value is invalid; construct instances
// with NewIdentity or IdentityFromString.
//
// Example usage:
//
//	customer := kernel.NewIdentity()
//
//	owner, err := kernel.IdentityFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type Identity struct {
	id uuid.UUID
}

// NewIdentity generates a new random Identity. This is the primary way to
// mint principal references for tests and for callers that are not supplied
// externally.
func NewIdentity() Identity {
	return Identity{id: uuid.New()}
}

// IdentityFromString parses an Identity from its string representation.
// Returns a ValidationError if the string is not a valid identity format.
// Used when reconstructing identities from transport or persistence.
func IdentityFromString(s string) (Identity, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Identity{}, errs.NewValidationErrorWithCause("identity", err)
	}

	identity := Identity{id: id}
	if err = identity.Validate(); err != nil {
		return Identity{}, err
	}

	return identity, nil
}

// String returns the canonical string representation of the identity.
func (i Identity) String() string {
	return i.id.String()
}

// IsZero reports whether the identity is the zero value.
func (i Identity) IsZero() bool {
	return i.id == uuid.Nil
}

// IsEqual compares two identities for equality.
func (i Identity) IsEqual(other Identity) bool {
	return i.id == other.id
}

// Validate checks that the identity is properly constructed.
// Returns ErrIdentityIsNotConstructed for the zero value.
func (i Identity) Validate() error {
	if i.IsZero() {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
