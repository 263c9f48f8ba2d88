package order

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a food order in the supply chain. It is the aggregate
// root that manages the order lifecycle from placement through preparation
// and delivery to completion or cancellation.
//
// Order follows these invariants:
//   - The id is assigned by the ledger, starts at 1, and is never reused
//   - The customer identity is valid and immutable
//   - The price is strictly positive, fixed at placement, and equals the
//     value held in escrow
//   - The cook and delivery man start unset and are populated exactly
//     once, at the Prepare and Deliver transitions respectively
//   - Status transitions follow the state machine defined by Status
//
// The struct uses private fields to ensure encapsulation; all mutation
// goes through the transition methods.
type Order struct {
	// id is the ledger-assigned order number
	id uint64

	// customer placed the order and is the only identity allowed to
	// complete or cancel it
	customer kernel.Identity

	// price is the escrowed amount, fixed at placement
	price kernel.Amount

	// status is the current position in the fulfillment pipeline
	status Status

	// cook is the employee who started preparing (nil until Prepare)
	cook *kernel.Identity

	// deliveryMan is the employee who took the order out (nil until Deliver)
	deliveryMan *kernel.Identity

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed Order with validation. The order
// starts in PLACED status with no cook or delivery man assigned.
//
// Parameters:
//   - id: the ledger-assigned order number (must be >= 1)
//   - customer: the identity placing the order (must be non-zero)
//   - price: the attached value (must be strictly positive)
func NewOrder(id uint64, customer kernel.Identity, price kernel.Amount) (*Order, error) {
	o := &Order{
		status:        StatusPlaced,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from stored state. Used by the ledger
// store when rehydrating aggregates; validates the same invariants as
// NewOrder plus status consistency (a stored order is never NOT_EXISTS,
// and the cook/delivery man assignments must match the status).
func RestoreOrder(
	id uint64,
	customer kernel.Identity,
	price kernel.Amount,
	status Status,
	cook *kernel.Identity,
	deliveryMan *kernel.Identity,
) (*Order, error) {
	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == StatusNotExists {
		return nil, errs.NewValidationErrorWithCause("status",
			errors.New("a stored order cannot be in NOT_EXISTS status"))
	}

	if cook != nil {
		if err := cook.Validate(); err != nil {
			return nil, err
		}
		o.cook = cook
	}
	if deliveryMan != nil {
		if err := deliveryMan.Validate(); err != nil {
			return nil, err
		}
		o.deliveryMan = deliveryMan
	}

	if status >= StatusPreparing && o.cook == nil {
		return nil, errs.NewValidationErrorWithCause("cook",
			fmt.Errorf("an order in %s status must have a cook", status))
	}
	if status >= StatusDelivering && o.deliveryMan == nil {
		return nil, errs.NewValidationErrorWithCause("deliveryMan",
			fmt.Errorf("an order in %s status must have a delivery man", status))
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the ledger-assigned order number.
func (o *Order) ID() uint64 {
	return o.id
}

// Customer returns the identity that placed the order.
func (o *Order) Customer() kernel.Identity {
	return o.customer
}

// Price returns the escrowed amount fixed at placement.
func (o *Order) Price() kernel.Amount {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Cook returns the identity of the cook, or nil before preparation.
func (o *Order) Cook() *kernel.Identity {
	return o.cook
}

// DeliveryMan returns the identity of the delivery man, or nil before
// delivery starts.
func (o *Order) DeliveryMan() *kernel.Identity {
	return o.deliveryMan
}

// IsOwnedBy reports whether the given identity is the order's customer.
func (o *Order) IsOwnedBy(identity kernel.Identity) bool {
	return o.customer.IsEqual(identity)
}

// Prepare records the cook and moves the order to PREPARING.
// The order must be in PLACED status; the cook identity must be valid.
func (o *Order) Prepare(cook kernel.Identity) error {
	if err := cook.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Prepare(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cook = &cook
	return nil
}

// Ready moves the order to READY. The order must be in PREPARING status.
func (o *Order) Ready() error {
	newStatus, err := o.status.Ready(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver records the delivery man and moves the order to DELIVERING.
// The order must be in READY status; the identity must be valid.
func (o *Order) Deliver(deliveryMan kernel.Identity) error {
	if err := deliveryMan.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryMan = &deliveryMan
	return nil
}

// Complete moves the order to COMPLETED, the terminal status.
// The order must be in DELIVERING status.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel validates the cancellation escape hatch. The order must still be
// in PLACED status; afterwards the aggregate reads as NOT_EXISTS and the
// ledger removes the record entirely.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel(o.id)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id uint64) error {
	if id == 0 {
		return errs.NewValidationErrorWithCause("order id",
			errors.New("order ids start at 1"))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer kernel.Identity) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setPrice(price kernel.Amount) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}
