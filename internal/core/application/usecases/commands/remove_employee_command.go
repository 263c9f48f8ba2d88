package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRemoveEmployeeCommandIsNotConstructed = errors.New(
	"RemoveEmployeeCommand must be created via NewRemoveEmployeeCommand constructor",
)

// RemoveEmployeeCommand represents a request to delete an employee record.
// Only the owner may perform it; the employee must currently exist.
type RemoveEmployeeCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Identity
	employee kernel.Identity

	guard guard.ConstructorGuard
}

// NewRemoveEmployeeCommand creates the command for the given caller and
// employee identity. The caller identity must be valid.
func NewRemoveEmployeeCommand(actor, employee kernel.Identity) (RemoveEmployeeCommand, error) {
	cmd := RemoveEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return RemoveEmployeeCommand{}, err
	}
	cmd.employee = employee

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEmployeeCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RemoveEmployeeCommand) Actor() kernel.Identity {
	return c.actor
}

// Employee returns the identity to remove.
func (c RemoveEmployeeCommand) Employee() kernel.Identity {
	return c.employee
}

func (c *RemoveEmployeeCommand) setActor(actor kernel.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
