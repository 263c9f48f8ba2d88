package commands

import (
	"context"

	"supplychain/internal/core/domain/model/staff"
	"supplychain/internal/pkg/errs"
)

// AddEmployeeCommandHandler handles employee registration.
//
// Example:
//
//	cmd, _ := commands.NewAddEmployeeCommand(owner, cookIdentity, "COOK")
//	handler := commands.NewAddEmployeeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // not the owner, zero identity, or unknown role tag
//	}
type AddEmployeeCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewAddEmployeeCommandHandler creates a handler for employee registration.
func NewAddEmployeeCommandHandler(uowFactory RegistryUoWFactory) AddEmployeeCommandHandler {
	return AddEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration: ownership check first, then identity
// and role validation, then the insert-or-overwrite.
func (h *AddEmployeeCommandHandler) Handle(ctx context.Context, cmd AddEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.RegistryRepository()
	owner, err := registry.Owner(ctx)
	if err != nil {
		return err
	}
	if !owner.IsEqual(cmd.Actor()) {
		return errs.NewAuthorizationError("only the owner can add employees")
	}

	if err = cmd.Employee().Validate(); err != nil {
		return err
	}

	role, err := staff.ParseRole(cmd.RoleTag())
	if err != nil {
		return err
	}

	employee, err := staff.NewEmployee(cmd.Employee(), role)
	if err != nil {
		return err
	}

	if err = registry.UpsertEmployee(ctx, employee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
