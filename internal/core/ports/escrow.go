package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
)

// EscrowService custodies the value attached at order placement until it
// is released to the company wallet or refunded to the customer.
//
// All three operations participate in the enclosing unit of work: a failed
// transfer aborts the whole operation, and no status change is observable
// without its corresponding value movement.
type EscrowService interface {
	// Hold earmarks the attached amount for the order id.
	Hold(ctx context.Context, orderID uint64, amount kernel.Amount) error

	// Release transfers the held amount to the recipient (the company
	// wallet) and clears the hold. Fails with a TransferError if no
	// hold exists for the id.
	Release(ctx context.Context, orderID uint64, to kernel.Identity) error

	// Refund transfers the held amount back to the recipient (the
	// customer) and clears the hold. Fails with a TransferError if no
	// hold exists for the id.
	Refund(ctx context.Context, orderID uint64, to kernel.Identity) error
}
