package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// ReadyOrderCommandHandler marks a preparing order as ready for pickup.
type ReadyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.EventNotifier
}

// NewReadyOrderCommandHandler creates a handler for the ready step.
func NewReadyOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.EventNotifier) ReadyOrderCommandHandler {
	return ReadyOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from PREPARING to READY.
func (h *ReadyOrderCommandHandler) Handle(ctx context.Context, cmd ReadyOrderCommand) error {
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

	isEmployee, err := uow.RegistryRepository().IsEmployee(ctx, cmd.Actor())
	if err != nil {
		return err
	}
	if !isEmployee {
		return errs.NewAuthorizationError("only employees can mark orders ready")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Ready(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event := order.ReadyEvent{ID: cmd.OrderID()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, event)

	return nil
}
