package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
)

// ListEventsQueryHandler serves the committed event log.
type ListEventsQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewListEventsQueryHandler creates a handler reading from the given ledger.
func NewListEventsQueryHandler(ledger *memstore.MemoryLedger) ListEventsQueryHandler {
	return ListEventsQueryHandler{ledger: ledger}
}

// Handle returns every committed event in emission order. Events staged in
// uncommitted units of work are not visible.
func (h ListEventsQueryHandler) Handle(
	ctx context.Context,
	query ListEventsQuery,
) ([]ListEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := h.ledger.Events()
	responses := make([]ListEventsQueryResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, ListEventsQueryResponse{
			Name:    event.Name(),
			OrderID: event.OrderID(),
		})
	}

	return responses, nil
}
