// Package commands contains the business operations that mutate ledger
// state. Implements the Command pattern for write operations: every public
// mutating operation of the supply chain has a validated command value
// object and a handler.
//
// All handlers follow a consistent shape: validate the command, create a
// unit of work, Begin, check authorization against the identity registry,
// validate the current state, perform the domain transition and any escrow
// movement, register the domain event, Commit, and only then notify
// external observers. A failure at any step rolls the whole operation back.
package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// aggregates they touch.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RegistryRepoFactory provides the identity registry within a transaction.
	RegistryRepoFactory interface {
		RegistryRepository() ports.RegistryRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EscrowFactory provides the escrow service within a transaction.
	EscrowFactory interface {
		Escrow() ports.EscrowService
	}

	// EventRegistrar stages domain events for emission at commit.
	EventRegistrar interface {
		RegisterEvent(event order.Event)
	}

	// RegistryUoW manages transactions for registry-only operations
	// (company wallet updates, employee management).
	RegistryUoW interface {
		TxManager
		RegistryRepoFactory
	}

	// RegistryUoWFactory creates registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// OrderUoW manages transactions for order transitions that move no
	// value (prepare, ready, deliver). The registry is still needed for
	// the employee authorization check.
	OrderUoW interface {
		TxManager
		RegistryRepoFactory
		OrderRepoFactory
		EventRegistrar
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EscrowUoW manages transactions for operations that both transition
	// an order and move value (place, complete, cancel).
	EscrowUoW interface {
		TxManager
		RegistryRepoFactory
		OrderRepoFactory
		EscrowFactory
		EventRegistrar
	}

	// EscrowUoWFactory creates escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}
)
