package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place an order with
// an attached value. The attached value becomes the order price, is held
// in escrow, and must be strictly greater than zero.
//
// Example:
//
//	amount, _ := kernel.AmountFromString("100")
//	cmd, err := commands.NewPlaceOrderCommand(customer, amount)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := commands.NewPlaceOrderCommandHandler(uowFactory, notifier)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Identity
	amount kernel.Amount

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates the command for the given customer and
// attached value. Validates that the caller identity is valid and the
// amount is strictly positive.
func NewPlaceOrderCommand(actor kernel.Identity, amount kernel.Amount) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAmount(amount),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Actor returns the customer placing the order.
func (c PlaceOrderCommand) Actor() kernel.Identity {
	return c.actor
}

// Amount returns the attached value.
func (c PlaceOrderCommand) Amount() kernel.Amount {
	return c.amount
}

func (c *PlaceOrderCommand) setActor(actor kernel.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setAmount(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}
