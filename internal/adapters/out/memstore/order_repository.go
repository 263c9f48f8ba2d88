package memstore

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
)

// memOrderRepository implements ports.OrderRepository over the staging
// area of a MemoryUnitOfWork.
type memOrderRepository struct {
	uow *MemoryUnitOfWork
}

// NextID reserves the next order id. The reservation holds the ledger's
// allocation mutex until this unit of work commits or rolls back, so
// concurrent placements linearize and a rolled-back placement returns its
// id to the pool.
func (r *memOrderRepository) NextID(_ context.Context) (uint64, error) {
	uow := r.uow
	if !uow.active {
		return 0, ErrNoActiveTransaction
	}
	if uow.reservedID != 0 {
		return uow.reservedID, nil
	}

	uow.ledger.allocMu.Lock()
	uow.ledger.mu.RLock()
	uow.reservedID = uow.ledger.nextOrderID
	uow.ledger.mu.RUnlock()

	return uow.reservedID, nil
}

// Add stages a new order aggregate.
func (r *memOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.lockOrder(aggregate.ID())
	record := recordFromAggregate(aggregate)
	r.uow.stagedOrders[aggregate.ID()] = &record
	return nil
}

// Update stages changes to an existing order aggregate.
func (r *memOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.lockOrder(aggregate.ID())
	if _, ok := r.uow.currentOrder(aggregate.ID()); !ok {
		return errs.NewNotFoundError("order", aggregate.ID())
	}

	record := recordFromAggregate(aggregate)
	r.uow.stagedOrders[aggregate.ID()] = &record
	return nil
}

// Get retrieves an order by id, observing staged writes of this unit of
// work. The per-id lock is taken before the read, so the order cannot
// change under the transaction.
func (r *memOrderRepository) Get(_ context.Context, id uint64) (*order.Order, error) {
	r.uow.lockOrder(id)

	record, ok := r.uow.currentOrder(id)
	if !ok {
		return nil, errs.NewNotFoundError("order", id)
	}

	return aggregateFromRecord(record)
}

// Delete stages the removal of the order record. Subsequent reads of the
// id report NOT_EXISTS; the id is never reused.
func (r *memOrderRepository) Delete(_ context.Context, id uint64) error {
	r.uow.lockOrder(id)

	if _, ok := r.uow.currentOrder(id); !ok {
		return errs.NewNotFoundError("order", id)
	}

	r.uow.stagedOrders[id] = nil
	return nil
}
