package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

// PlaceOrderCommandHandler handles order placement: id allocation, order
// creation in PLACED status, and the escrow hold of the attached value.
// Any identity may place an order.
type PlaceOrderCommandHandler struct {
	uowFactory EscrowUoWFactory
	notifier   ports.EventNotifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory EscrowUoWFactory, notifier ports.EventNotifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the placement and returns the allocated order id.
// The id, the order record, the escrow hold, and the OrderPlaced event
// commit together; on any failure the id returns to the pool.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(id, cmd.Actor(), cmd.Amount())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Escrow().Hold(ctx, id, cmd.Amount()); err != nil {
		return 0, err
	}

	event := order.PlacedEvent{ID: id, Customer: cmd.Actor(), Price: cmd.Amount()}
	uow.RegisterEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	// Post-commit fan-out is best-effort; the notifier logs its own failures.
	_ = h.notifier.Publish(ctx, event)

	return id, nil
}
