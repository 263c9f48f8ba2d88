// Package memstore provides the in-memory ledger store and its Unit of Work
// implementation. The ledger is the process-wide state of the supply chain:
// the owner and company wallet identities, the employee set, the order map
// with its monotonic id counter, the escrow holds and balances, and the
// append-only event log.
//
// All mutation goes through MemoryUnitOfWork, which stages writes and
// applies them in a single critical section at Commit. Operations targeting
// the same order id are linearized by a per-id lock held from first access
// to Commit/Rollback; operations on distinct ids proceed independently.
// Order id allocation is exclusive until the allocating unit of work
// commits, so successful placements produce gapless monotonic ids.
package memstore

import (
	"sync"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/staff"

	"github.com/shopspring/decimal"
)

// orderRecord is the stored snapshot of an order aggregate. Records are
// plain values so committed state never aliases live aggregates.
type orderRecord struct {
	id          uint64
	customer    kernel.Identity
	price       kernel.Amount
	status      order.Status
	cook        *kernel.Identity
	deliveryMan *kernel.Identity
}

// employeeRecord is the stored snapshot of an employee.
type employeeRecord struct {
	identity kernel.Identity
	role     staff.Role
}

// OrderView is a read-only projection of a stored order, served to the
// query side without exposing the aggregate.
type OrderView struct {
	ID          uint64
	Customer    kernel.Identity
	Price       kernel.Amount
	Status      order.Status
	Cook        *kernel.Identity
	DeliveryMan *kernel.Identity
}

// EmployeeView is a read-only projection of a stored employee.
type EmployeeView struct {
	Identity kernel.Identity
	Role     staff.Role
}

// MemoryLedger owns the process-wide supply chain state. It is initialized
// once at construction with the deployer identity as both owner and company
// wallet, nextOrderID = 1, and empty maps. State is durable for the life of
// the ledger; there is no teardown.
//
// The ledger is safe for concurrent use. Direct read methods serve the
// query side; all writes go through the unit of work.
type MemoryLedger struct {
	mu sync.RWMutex

	owner         kernel.Identity
	companyWallet kernel.Identity
	nextOrderID   uint64
	orders        map[uint64]orderRecord
	employees     map[kernel.Identity]employeeRecord

	// escrow bank state: per-order earmarks and per-identity balances
	holds    map[uint64]kernel.Amount
	balances map[kernel.Identity]decimal.Decimal

	// append-only event log, ordered by commit time
	events []order.Event

	// allocMu serializes order id allocation across placements
	allocMu sync.Mutex

	// orderLocks linearizes operations per order id
	orderLocks keyedMutex
}

// NewMemoryLedger constructs the ledger with the deployer identity.
// Owner and company wallet both start as the deployer.
func NewMemoryLedger(deployer kernel.Identity) (*MemoryLedger, error) {
	if err := deployer.Validate(); err != nil {
		return nil, err
	}

	return &MemoryLedger{
		owner:         deployer,
		companyWallet: deployer,
		nextOrderID:   1,
		orders:        make(map[uint64]orderRecord),
		employees:     make(map[kernel.Identity]employeeRecord),
		holds:         make(map[uint64]kernel.Amount),
		balances:      make(map[kernel.Identity]decimal.Decimal),
		orderLocks:    newKeyedMutex(),
	}, nil
}

// OwnerIdentity returns the registry owner.
func (l *MemoryLedger) OwnerIdentity() kernel.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.owner
}

// CompanyWalletIdentity returns the current payout identity.
func (l *MemoryLedger) CompanyWalletIdentity() kernel.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.companyWallet
}

// ViewOrder returns a projection of the stored order, if it exists.
func (l *MemoryLedger) ViewOrder(id uint64) (OrderView, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.orders[id]
	if !ok {
		return OrderView{}, false
	}
	return viewFromRecord(record), true
}

// OrderStatus returns the stored status for the id, or NOT_EXISTS for ids
// that were never placed or whose record was removed by cancellation.
func (l *MemoryLedger) OrderStatus(id uint64) order.Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.orders[id]
	if !ok {
		return order.StatusNotExists
	}
	return record.status
}

// ViewEmployee returns a projection of the stored employee, if registered.
func (l *MemoryLedger) ViewEmployee(identity kernel.Identity) (EmployeeView, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.employees[identity]
	if !ok {
		return EmployeeView{}, false
	}
	return EmployeeView{Identity: record.identity, Role: record.role}, true
}

// BalanceOf returns the escrow bank balance credited to the identity.
// Identities that never received a release or refund have a zero balance.
func (l *MemoryLedger) BalanceOf(identity kernel.Identity) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[identity]
}

// HeldAmount returns the escrow earmark for the order id, if any.
func (l *MemoryLedger) HeldAmount(orderID uint64) (kernel.Amount, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	amount, ok := l.holds[orderID]
	return amount, ok
}

// Events returns a copy of the append-only event log in emission order.
func (l *MemoryLedger) Events() []order.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]order.Event, len(l.events))
	copy(events, l.events)
	return events
}

// CountByStatus returns the number of stored orders per status.
// Cancelled orders have no record and are not counted.
func (l *MemoryLedger) CountByStatus() map[order.Status]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, record := range l.orders {
		counts[record.status]++
	}
	return counts
}

func viewFromRecord(record orderRecord) OrderView {
	view := OrderView{
		ID:       record.id,
		Customer: record.customer,
		Price:    record.price,
		Status:   record.status,
	}
	if record.cook != nil {
		cook := *record.cook
		view.Cook = &cook
	}
	if record.deliveryMan != nil {
		deliveryMan := *record.deliveryMan
		view.DeliveryMan = &deliveryMan
	}
	return view
}

func recordFromAggregate(aggregate *order.Order) orderRecord {
	record := orderRecord{
		id:       aggregate.ID(),
		customer: aggregate.Customer(),
		price:    aggregate.Price(),
		status:   aggregate.Status(),
	}
	if cook := aggregate.Cook(); cook != nil {
		c := *cook
		record.cook = &c
	}
	if deliveryMan := aggregate.DeliveryMan(); deliveryMan != nil {
		d := *deliveryMan
		record.deliveryMan = &d
	}
	return record
}

func aggregateFromRecord(record orderRecord) (*order.Order, error) {
	var cook, deliveryMan *kernel.Identity
	if record.cook != nil {
		c := *record.cook
		cook = &c
	}
	if record.deliveryMan != nil {
		d := *record.deliveryMan
		deliveryMan = &d
	}
	return order.RestoreOrder(record.id, record.customer, record.price, record.status, cook, deliveryMan)
}

// keyedMutex provides one mutex per order id, created on demand.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func newKeyedMutex() keyedMutex {
	return keyedMutex{locks: make(map[uint64]*sync.Mutex)}
}

func (k *keyedMutex) lock(id uint64) {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
}

func (k *keyedMutex) unlock(id uint64) {
	k.mu.Lock()
	m := k.locks[id]
	k.mu.Unlock()

	m.Unlock()
}
