package memstore

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// memEscrowService implements ports.EscrowService over the staging area of
// a MemoryUnitOfWork. Held value arrives from outside the system at
// placement (the attached value of the order); release and refund move the
// held amount onto the recipient's balance in the escrow bank.
type memEscrowService struct {
	uow *MemoryUnitOfWork
}

// Hold stages an earmark of the attached amount for the order id.
func (s *memEscrowService) Hold(_ context.Context, orderID uint64, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	s.uow.lockOrder(orderID)
	if _, ok := s.uow.currentHold(orderID); ok {
		return errs.NewTransferError(orderID, errors.New("a hold is already recorded for this order"))
	}

	hold := amount
	s.uow.stagedHolds[orderID] = &hold
	return nil
}

// Release stages the transfer of the held amount to the recipient and
// clears the hold.
func (s *memEscrowService) Release(_ context.Context, orderID uint64, to kernel.Identity) error {
	return s.payOut(orderID, to)
}

// Refund stages the transfer of the held amount back to the recipient and
// clears the hold.
func (s *memEscrowService) Refund(_ context.Context, orderID uint64, to kernel.Identity) error {
	return s.payOut(orderID, to)
}

// payOut moves the hold for the order onto the recipient's balance.
// A missing or already-cleared hold is a TransferError: the enclosing
// operation aborts and every staged mutation rolls back with it.
func (s *memEscrowService) payOut(orderID uint64, to kernel.Identity) error {
	if err := to.Validate(); err != nil {
		return errs.NewTransferError(orderID, err)
	}

	s.uow.lockOrder(orderID)
	amount, ok := s.uow.currentHold(orderID)
	if !ok {
		return errs.NewTransferError(orderID, errors.New("no hold recorded for this order"))
	}

	s.uow.stagedHolds[orderID] = nil
	s.uow.stagedCredits[to] = s.uow.stagedCredits[to].Add(amount.Decimal())
	return nil
}
