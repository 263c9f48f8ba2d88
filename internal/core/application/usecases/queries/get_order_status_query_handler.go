package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
)

// GetOrderStatusQueryHandler serves status probes from the ledger.
type GetOrderStatusQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetOrderStatusQueryHandler creates a handler reading from the given ledger.
func NewGetOrderStatusQueryHandler(ledger *memstore.MemoryLedger) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{ledger: ledger}
}

// Handle returns the status tag for the probed id. Never fails for unknown
// ids; those report NOT_EXISTS.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	status := h.ledger.OrderStatus(query.OrderID())

	return GetOrderStatusQueryResponse{
		ID:     query.OrderID(),
		Status: status.String(),
	}, nil
}
