package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// DeliverOrderCommandHandler hands a ready order to the calling employee
// for delivery. The caller is recorded as the delivery man.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.EventNotifier
}

// NewDeliverOrderCommandHandler creates a handler for the delivery step.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.EventNotifier) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from READY to DELIVERING and records the caller
// as the delivery man.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
		return errs.NewAuthorizationError("only employees can deliver orders")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Deliver(cmd.Actor()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event := order.InDeliveryEvent{ID: cmd.OrderID(), DeliveryMan: cmd.Actor()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, event)

	return nil
}
