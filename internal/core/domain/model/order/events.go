package order

import (
	"supplychain/internal/core/domain/model/kernel"
)

// Event is a domain event describing one successful lifecycle transition.
// Events are append-only, ordered by emission time, and are the only
// externally observable trace of state changes besides direct reads.
// An event is only emitted after the transition and its value movement
// have committed; failed operations never produce events.
type Event interface {
	// Name returns the event tag, e.g. "OrderPlaced".
	Name() string

	// OrderID returns the id of the order the event concerns.
	OrderID() uint64
}

// PlacedEvent is emitted when a customer places an order and its price
// is taken into escrow.
type PlacedEvent struct {
	ID       uint64
	Customer kernel.Identity
	Price    kernel.Amount
}

func (e PlacedEvent) Name() string    { return "OrderPlaced" }
func (e PlacedEvent) OrderID() uint64 { return e.ID }

// PreparingEvent is emitted when a cook starts preparing an order.
type PreparingEvent struct {
	ID   uint64
	Cook kernel.Identity
}

func (e PreparingEvent) Name() string    { return "OrderPreparing" }
func (e PreparingEvent) OrderID() uint64 { return e.ID }

// ReadyEvent is emitted when the kitchen finishes an order.
type ReadyEvent struct {
	ID uint64
}

func (e ReadyEvent) Name() string    { return "OrderReady" }
func (e ReadyEvent) OrderID() uint64 { return e.ID }

// InDeliveryEvent is emitted when a delivery man takes an order out.
type InDeliveryEvent struct {
	ID          uint64
	DeliveryMan kernel.Identity
}

func (e InDeliveryEvent) Name() string    { return "OrderInDelivery" }
func (e InDeliveryEvent) OrderID() uint64 { return e.ID }

// CompletedEvent is emitted when the customer confirms receipt and the
// escrowed price is released to the company wallet.
type CompletedEvent struct {
	ID uint64
}

func (e CompletedEvent) Name() string    { return "OrderCompleted" }
func (e CompletedEvent) OrderID() uint64 { return e.ID }

// CancelledEvent is emitted when a customer cancels a placed order and
// the escrowed price is refunded.
type CancelledEvent struct {
	ID uint64
}

func (e CancelledEvent) Name() string    { return "OrderCancelled" }
func (e CancelledEvent) OrderID() uint64 { return e.ID }
