package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// CompleteOrderCommandHandler confirms delivery: the order becomes
// COMPLETED and the escrowed price is released to the company wallet.
type CompleteOrderCommandHandler struct {
	uowFactory EscrowUoWFactory
	notifier   ports.EventNotifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory EscrowUoWFactory, notifier ports.EventNotifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from DELIVERING to COMPLETED and pays out the
// held price. The status change and the payout commit together: if the
// release fails nothing changes.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.Actor()) {
		return errs.NewAuthorizationError("only the customer can complete the order")
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	wallet, err := uow.RegistryRepository().CompanyWallet(ctx)
	if err != nil {
		return err
	}

	if err = uow.Escrow().Release(ctx, cmd.OrderID(), wallet); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event := order.CompletedEvent{ID: cmd.OrderID()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, event)

	return nil
}
