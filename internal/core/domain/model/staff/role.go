package staff

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Role is a closed enumeration of employee role tags.
//
// Only the textual tags "COOK", "DELIVERY_MAN", and "CUSTOMER" parse as
// roles; anything else is a ValidationError. Role is a value object that
// provides string representations for transport and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCook prepares orders in the kitchen.
	RoleCook

	// RoleDeliveryMan carries orders to customers.
	RoleDeliveryMan

	// RoleCustomer places and completes orders.
	RoleCustomer
)

// getRoleStrings returns the textual tag for every valid role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCook:        "COOK",
		RoleDeliveryMan: "DELIVERY_MAN",
		RoleCustomer:    "CUSTOMER",
	}
}

// ParseRole parses a textual role tag into a Role.
// Returns a ValidationError for any tag outside the closed set.
//
// Example:
//
//	role, err := staff.ParseRole("COOK")
//	if err != nil {
//	    // tag was not a known role
//	}
func ParseRole(tag string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == tag {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValidationErrorWithCause("role",
		fmt.Errorf("%q is not a known role", tag))
}

// Validate checks that the Role value is a member of the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValidationErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the textual tag of the role, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
