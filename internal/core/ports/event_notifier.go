package ports

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// EventNotifier fans committed domain events out to external observers
// (e.g. a message bus). Notification happens after the unit of work has
// committed and is best-effort: a notifier failure never rolls back the
// committed operation.
type EventNotifier interface {
	Publish(ctx context.Context, event order.Event) error
}
