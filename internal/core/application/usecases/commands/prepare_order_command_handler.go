package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// PrepareOrderCommandHandler starts preparation of a placed order. The
// calling employee becomes the order's cook.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.EventNotifier
}

// NewPrepareOrderCommandHandler creates a handler for the preparation step.
func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.EventNotifier) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from PLACED to PREPARING and records the caller
// as the cook.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
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

	// Employment is checked before the order is looked up, so a
	// non-employee probing an unknown id cannot tell it does not exist.
	isEmployee, err := uow.RegistryRepository().IsEmployee(ctx, cmd.Actor())
	if err != nil {
		return err
	}
	if !isEmployee {
		return errs.NewAuthorizationError("only employees can prepare orders")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Prepare(cmd.Actor()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event := order.PreparingEvent{ID: cmd.OrderID(), Cook: cmd.Actor()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Fan-out happens after the state change is durable; the notifier
	// logs its own failures.
	_ = h.notifier.Publish(ctx, event)

	return nil
}
