package staff

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through the NewEmployee factory method.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee is a registered, owner-approved identity carrying one role tag.
// Employees are unique per identity; registering the same identity again
// overwrites its role.
//
// Employee follows these invariants:
//   - The identity must be valid (never zero)
//   - The role must be a member of the closed Role set
//   - Can only be created through NewEmployee
type Employee struct {
	identity kernel.Identity
	role     Role

	isConstructed bool
}

// NewEmployee creates an Employee with validation. Returns a
// ValidationError if the identity is zero or the role is not a member of
// the closed set.
func NewEmployee(identity kernel.Identity, role Role) (*Employee, error) {
	employee := &Employee{isConstructed: true}

	if err := errors.Join(
		employee.setIdentity(identity),
		employee.setRole(role),
	); err != nil {
		return nil, err
	}

	return employee, nil
}

// Validate ensures the Employee was properly constructed through NewEmployee.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// Identity returns the employee's principal reference.
func (e *Employee) Identity() kernel.Identity {
	return e.identity
}

// Role returns the employee's role tag.
func (e *Employee) Role() Role {
	return e.role
}

// IsEqual compares two employees by identity.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.identity.IsEqual(other.identity)
}

func (e *Employee) setIdentity(identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	e.identity = identity
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}
