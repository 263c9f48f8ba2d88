package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a placed order: the escrowed price is
// refunded to the customer and the order record is removed entirely, so a
// subsequent status read reports NOT_EXISTS.
type CancelOrderCommandHandler struct {
	uowFactory EscrowUoWFactory
	notifier   ports.EventNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory EscrowUoWFactory, notifier ports.EventNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle refunds the held price to the customer and deletes the order.
// Cancellation is only possible while the order is still PLACED; the
// refund and the deletion commit together.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
		return errs.NewAuthorizationError("only the customer can cancel the order")
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.Escrow().Refund(ctx, cmd.OrderID(), aggregate.Customer()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	event := order.CancelledEvent{ID: cmd.OrderID()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, event)

	return nil
}
