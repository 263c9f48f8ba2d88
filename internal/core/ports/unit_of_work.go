package ports

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates a new UnitOfWork for each operation invocation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the atomic boundary of one ledger operation: authorization
// check, status transition, value transfer, and event emission commit or
// roll back together. No observer sees an in-flight (uncommitted) write.
//
// Client code must explicitly manage the transaction lifecycle: Begin,
// perform repository and escrow operations, then Commit — or Rollback to
// discard every staged mutation.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit atomically applies every staged mutation and appends the
	// registered events to the ledger's event log, preserving emission
	// order. Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards all staged mutations and registered events and
	// releases any order locks and id reservations held by this unit
	// of work.
	Rollback(ctx context.Context) error

	// RegistryRepository returns a RegistryRepository bound to this
	// transaction.
	RegistryRepository() RegistryRepository

	// OrderRepository returns an OrderRepository bound to this
	// transaction.
	OrderRepository() OrderRepository

	// Escrow returns an EscrowService bound to this transaction.
	Escrow() EscrowService

	// RegisterEvent stages a domain event for emission. The event is
	// appended to the event log at Commit; registered events of a
	// rolled-back unit of work are never observable.
	RegisterEvent(event order.Event)
}
