package ports

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates within
// the ledger.
type OrderRepository interface {
	// NextID reserves the next order id. The reservation is exclusive
	// until the unit of work commits (making the allocation permanent)
	// or rolls back (returning the id to the pool), so successful
	// placements allocate gapless monotonic ids starting at 1.
	NextID(ctx context.Context) (uint64, error)

	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns a NotFoundError for ids that were never placed or whose
	// record was removed by cancellation.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// Delete removes an order record entirely. Subsequent status reads
	// for the id report NOT_EXISTS. Ids are never reused.
	Delete(ctx context.Context, id uint64) error
}
