package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrPrepareOrderCommandIsNotConstructed = errors.New(
		"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
	)
	ErrReadyOrderCommandIsNotConstructed = errors.New(
		"ReadyOrderCommand must be created via NewReadyOrderCommand constructor",
	)
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// orderCommand is the shared shape of the id-targeting transition commands:
// a caller identity plus the targeted order id. The order id is not
// validated at construction — authorization is checked before existence,
// so an unauthorized caller targeting a bogus id still receives an
// AuthorizationError.
type orderCommand struct {
	actor   kernel.Identity
	orderID uint64

	guard guard.ConstructorGuard
}

func newOrderCommand(actor kernel.Identity, orderID uint64) (orderCommand, error) {
	if err := actor.Validate(); err != nil {
		return orderCommand{}, err
	}

	return orderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the caller identity.
func (c orderCommand) Actor() kernel.Identity {
	return c.actor
}

// OrderID returns the targeted order id.
func (c orderCommand) OrderID() uint64 {
	return c.orderID
}

// PrepareOrderCommand asks to move a PLACED order into PREPARING.
// The caller must be an employee and is recorded as the order's cook.
type PrepareOrderCommand struct {
	orderCommand
}

// NewPrepareOrderCommand creates the command. The caller identity must be valid.
func NewPrepareOrderCommand(actor kernel.Identity, orderID uint64) (PrepareOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return PrepareOrderCommand{}, err
	}
	return PrepareOrderCommand{orderCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// ReadyOrderCommand asks to move a PREPARING order into READY.
// The caller must be an employee.
type ReadyOrderCommand struct {
	orderCommand
}

// NewReadyOrderCommand creates the command. The caller identity must be valid.
func NewReadyOrderCommand(actor kernel.Identity, orderID uint64) (ReadyOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return ReadyOrderCommand{}, err
	}
	return ReadyOrderCommand{orderCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReadyOrderCommand) Validate() error {
	return c.guard.Validate(ErrReadyOrderCommandIsNotConstructed)
}

// DeliverOrderCommand asks to move a READY order into DELIVERING.
// The caller must be an employee and is recorded as the delivery man.
type DeliverOrderCommand struct {
	orderCommand
}

// NewDeliverOrderCommand creates the command. The caller identity must be valid.
func NewDeliverOrderCommand(actor kernel.Identity, orderID uint64) (DeliverOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{orderCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// CompleteOrderCommand asks to move a DELIVERING order into COMPLETED and
// release the escrowed price to the company wallet. The caller must be the
// order's customer.
type CompleteOrderCommand struct {
	orderCommand
}

// NewCompleteOrderCommand creates the command. The caller identity must be valid.
func NewCompleteOrderCommand(actor kernel.Identity, orderID uint64) (CompleteOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CancelOrderCommand asks to cancel a PLACED order: the escrowed price is
// refunded and the order record removed. The caller must be the order's
// customer.
type CancelOrderCommand struct {
	orderCommand
}

// NewCancelOrderCommand creates the command. The caller identity must be valid.
func NewCancelOrderCommand(actor kernel.Identity, orderID uint64) (CancelOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
