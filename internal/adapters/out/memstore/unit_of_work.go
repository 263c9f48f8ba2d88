package memstore

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit
// of work has no transaction in progress.
var ErrNoActiveTransaction = errors.New("unit of work has no active transaction")

// MemoryUnitOfWorkFactory creates unit of work instances bound to a ledger.
// Each business operation gets a fresh instance with its own staging area,
// isolated from other concurrent operations.
type MemoryUnitOfWorkFactory struct {
	ledger *MemoryLedger
}

// NewMemoryUnitOfWorkFactory creates a factory over the given ledger.
func NewMemoryUnitOfWorkFactory(ledger *MemoryLedger) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{ledger: ledger}
}

// Create produces a new UnitOfWork ready for one operation invocation.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{ledger: f.ledger}
}

// MemoryUnitOfWork implements the two-phase discipline over the in-memory
// ledger: repository and escrow writes stage into the unit of work, and
// Commit applies every staged mutation plus the registered events in one
// critical section under the ledger lock. Rollback discards the staging
// area, so a failed operation leaves the ledger provably unchanged.
//
// The unit of work acquires the per-order-id lock on first access to an
// order and holds it until Commit or Rollback, linearizing concurrent
// operations on the same id. Reads within the transaction observe the
// staged writes of this unit of work and never the in-flight writes of
// another.
type MemoryUnitOfWork struct {
	ledger *MemoryLedger
	active bool

	stagedWallet    *kernel.Identity
	stagedEmployees map[kernel.Identity]*employeeRecord // nil value = delete
	stagedOrders    map[uint64]*orderRecord             // nil value = delete
	stagedHolds     map[uint64]*kernel.Amount           // nil value = hold cleared
	stagedCredits   map[kernel.Identity]decimal.Decimal
	stagedEvents    []order.Event

	lockedOrders map[uint64]struct{}

	// reservedID is the order id reserved by NextID; while non-zero this
	// unit of work holds the ledger's allocation mutex
	reservedID uint64
}

// Begin starts the transaction. Calling Begin on an already active unit of
// work is a no-op.
func (uow *MemoryUnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.active = true
	uow.stagedEmployees = make(map[kernel.Identity]*employeeRecord)
	uow.stagedOrders = make(map[uint64]*orderRecord)
	uow.stagedHolds = make(map[uint64]*kernel.Amount)
	uow.stagedCredits = make(map[kernel.Identity]decimal.Decimal)
	uow.lockedOrders = make(map[uint64]struct{})
	return nil
}

// Commit applies every staged mutation and appends the registered events to
// the ledger's event log in one critical section. After Commit the
// transaction is closed.
func (uow *MemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	l := uow.ledger
	l.mu.Lock()

	if uow.stagedWallet != nil {
		l.companyWallet = *uow.stagedWallet
	}

	for identity, record := range uow.stagedEmployees {
		if record == nil {
			delete(l.employees, identity)
			continue
		}
		l.employees[identity] = *record
	}

	for id, record := range uow.stagedOrders {
		if record == nil {
			delete(l.orders, id)
			continue
		}
		l.orders[id] = *record
	}

	for id, hold := range uow.stagedHolds {
		if hold == nil {
			delete(l.holds, id)
			continue
		}
		l.holds[id] = *hold
	}

	for identity, credit := range uow.stagedCredits {
		l.balances[identity] = l.balances[identity].Add(credit)
	}

	if uow.reservedID != 0 {
		l.nextOrderID = uow.reservedID + 1
	}

	l.events = append(l.events, uow.stagedEvents...)

	l.mu.Unlock()

	uow.release()
	return nil
}

// Rollback discards all staged mutations and registered events and
// releases the locks and id reservation held by this unit of work.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.release()
	return nil
}

// RegistryRepository returns the registry repository bound to this
// transaction.
func (uow *MemoryUnitOfWork) RegistryRepository() ports.RegistryRepository {
	return &memRegistryRepository{uow: uow}
}

// OrderRepository returns the order repository bound to this transaction.
func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return &memOrderRepository{uow: uow}
}

// Escrow returns the escrow service bound to this transaction.
func (uow *MemoryUnitOfWork) Escrow() ports.EscrowService {
	return &memEscrowService{uow: uow}
}

// RegisterEvent stages a domain event for emission at Commit. Events of a
// rolled-back unit of work are never observable.
func (uow *MemoryUnitOfWork) RegisterEvent(event order.Event) {
	uow.stagedEvents = append(uow.stagedEvents, event)
}

// release drops all staging state, the per-order locks, and the id
// reservation, and closes the transaction.
func (uow *MemoryUnitOfWork) release() {
	for id := range uow.lockedOrders {
		uow.ledger.orderLocks.unlock(id)
	}
	if uow.reservedID != 0 {
		uow.reservedID = 0
		uow.ledger.allocMu.Unlock()
	}

	uow.active = false
	uow.stagedWallet = nil
	uow.stagedEmployees = nil
	uow.stagedOrders = nil
	uow.stagedHolds = nil
	uow.stagedCredits = nil
	uow.stagedEvents = nil
	uow.lockedOrders = nil
}

// lockOrder takes the per-id lock on first access to the order id and
// remembers it for release at Commit/Rollback.
func (uow *MemoryUnitOfWork) lockOrder(id uint64) {
	if _, ok := uow.lockedOrders[id]; ok {
		return
	}
	uow.ledger.orderLocks.lock(id)
	uow.lockedOrders[id] = struct{}{}
}

// currentOrder reads the order through the staging area: staged writes of
// this unit of work win over committed ledger state.
func (uow *MemoryUnitOfWork) currentOrder(id uint64) (orderRecord, bool) {
	if record, staged := uow.stagedOrders[id]; staged {
		if record == nil {
			return orderRecord{}, false
		}
		return *record, true
	}

	uow.ledger.mu.RLock()
	defer uow.ledger.mu.RUnlock()
	record, ok := uow.ledger.orders[id]
	return record, ok
}

// currentHold reads the escrow hold through the staging area.
func (uow *MemoryUnitOfWork) currentHold(id uint64) (kernel.Amount, bool) {
	if hold, staged := uow.stagedHolds[id]; staged {
		if hold == nil {
			return kernel.Amount{}, false
		}
		return *hold, true
	}

	uow.ledger.mu.RLock()
	defer uow.ledger.mu.RUnlock()
	hold, ok := uow.ledger.holds[id]
	return hold, ok
}

// currentEmployee reads an employee record through the staging area.
func (uow *MemoryUnitOfWork) currentEmployee(identity kernel.Identity) (employeeRecord, bool) {
	if record, staged := uow.stagedEmployees[identity]; staged {
		if record == nil {
			return employeeRecord{}, false
		}
		return *record, true
	}

	uow.ledger.mu.RLock()
	defer uow.ledger.mu.RUnlock()
	record, ok := uow.ledger.employees[identity]
	return record, ok
}
