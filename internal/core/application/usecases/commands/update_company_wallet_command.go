package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateCompanyWalletCommandIsNotConstructed = errors.New(
	"UpdateCompanyWalletCommand must be created via NewUpdateCompanyWalletCommand constructor",
)

// UpdateCompanyWalletCommand represents a request to replace the payout
// identity credited on order completion. Only the owner may perform it.
//
// The wallet identity is deliberately not validated at construction: the
// ownership check runs first in the handler, so a non-owner supplying a
// zero wallet still receives an AuthorizationError.
type UpdateCompanyWalletCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Identity
	wallet kernel.Identity

	guard guard.ConstructorGuard
}

// NewUpdateCompanyWalletCommand creates the command for the given caller
// and new wallet identity. The caller identity must be valid.
func NewUpdateCompanyWalletCommand(actor, wallet kernel.Identity) (UpdateCompanyWalletCommand, error) {
	cmd := UpdateCompanyWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return UpdateCompanyWalletCommand{}, err
	}
	cmd.wallet = wallet

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCompanyWalletCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanyWalletCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c UpdateCompanyWalletCommand) Actor() kernel.Identity {
	return c.actor
}

// Wallet returns the proposed payout identity.
func (c UpdateCompanyWalletCommand) Wallet() kernel.Identity {
	return c.wallet
}

func (c *UpdateCompanyWalletCommand) setActor(actor kernel.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
