package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrAddEmployeeCommandIsNotConstructed = errors.New(
	"AddEmployeeCommand must be created via NewAddEmployeeCommand constructor",
)

// AddEmployeeCommand represents a request to register an employee identity
// with a role tag. Only the owner may perform it; re-adding an identity
// overwrites its role.
//
// The employee identity and the role tag are validated in the handler
// after the ownership check, so a non-owner supplying garbage still
// receives an AuthorizationError.
type AddEmployeeCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Identity
	employee kernel.Identity
	roleTag  string

	guard guard.ConstructorGuard
}

// NewAddEmployeeCommand creates the command for the given caller, employee
// identity, and textual role tag. The caller identity must be valid.
func NewAddEmployeeCommand(actor, employee kernel.Identity, roleTag string) (AddEmployeeCommand, error) {
	cmd := AddEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return AddEmployeeCommand{}, err
	}
	cmd.employee = employee
	cmd.roleTag = roleTag

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAddEmployeeCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c AddEmployeeCommand) Actor() kernel.Identity {
	return c.actor
}

// Employee returns the identity to register.
func (c AddEmployeeCommand) Employee() kernel.Identity {
	return c.employee
}

// RoleTag returns the raw textual role tag.
func (c AddEmployeeCommand) RoleTag() string {
	return c.roleTag
}

func (c *AddEmployeeCommand) setActor(actor kernel.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
