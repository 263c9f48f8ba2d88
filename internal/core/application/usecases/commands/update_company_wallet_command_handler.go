package commands

import (
	"context"

	"supplychain/internal/pkg/errs"
)

// UpdateCompanyWalletCommandHandler handles company wallet updates.
// The ownership check runs before the wallet identity validation, matching
// the order of checks of the operation table.
type UpdateCompanyWalletCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateCompanyWalletCommandHandler creates a handler for wallet updates.
func NewUpdateCompanyWalletCommandHandler(uowFactory RegistryUoWFactory) UpdateCompanyWalletCommandHandler {
	return UpdateCompanyWalletCommandHandler{uowFactory: uowFactory}
}

// Handle processes the wallet update: only the owner may call, and the new
// wallet identity must be non-zero.
func (h *UpdateCompanyWalletCommandHandler) Handle(ctx context.Context, cmd UpdateCompanyWalletCommand) error {
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
		return errs.NewAuthorizationError("only the owner can update the company wallet")
	}

	if err = cmd.Wallet().Validate(); err != nil {
		return err
	}

	if err = registry.SetCompanyWallet(ctx, cmd.Wallet()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
