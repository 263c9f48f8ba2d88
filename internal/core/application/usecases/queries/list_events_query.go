package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrListEventsQueryIsNotConstructed = errors.New(
	"ListEventsQuery must be created via NewListEventsQuery constructor",
)

// ListEventsQuery retrieves the append-only log of committed domain events
// in emission order.
type ListEventsQuery struct {
	guard guard.ConstructorGuard
}

// NewListEventsQuery creates a parameterless event log query.
func NewListEventsQuery() ListEventsQuery {
	return ListEventsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListEventsQuery) Validate() error {
	return q.guard.Validate(ErrListEventsQueryIsNotConstructed)
}

// ListEventsQueryResponse is one committed event.
type ListEventsQueryResponse struct {
	Name    string `json:"name"`
	OrderID uint64 `json:"order_id"`
}
