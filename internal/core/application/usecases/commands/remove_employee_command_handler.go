package commands

import (
	"context"

	"supplychain/internal/pkg/errs"
)

// RemoveEmployeeCommandHandler handles employee deletion.
type RemoveEmployeeCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRemoveEmployeeCommandHandler creates a handler for employee deletion.
func NewRemoveEmployeeCommandHandler(uowFactory RegistryUoWFactory) RemoveEmployeeCommandHandler {
	return RemoveEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion: ownership check first, then identity
// validation, then existence. A missing employee is a NotFoundError.
func (h *RemoveEmployeeCommandHandler) Handle(ctx context.Context, cmd RemoveEmployeeCommand) error {
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
		return errs.NewAuthorizationError("only the owner can remove employees")
	}

	if err = cmd.Employee().Validate(); err != nil {
		return err
	}

	if err = registry.RemoveEmployee(ctx, cmd.Employee()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
