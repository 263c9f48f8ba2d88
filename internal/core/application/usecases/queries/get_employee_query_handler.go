package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/pkg/errs"
)

// GetEmployeeQueryHandler serves employee lookups from the ledger.
type GetEmployeeQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetEmployeeQueryHandler creates a handler reading from the given ledger.
func NewGetEmployeeQueryHandler(ledger *memstore.MemoryLedger) GetEmployeeQueryHandler {
	return GetEmployeeQueryHandler{ledger: ledger}
}

// Handle returns the employee record, or a NotFoundError if the identity
// was never registered or has been removed.
func (h GetEmployeeQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeeQuery,
) (GetEmployeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEmployeeQueryResponse{}, err
	}

	view, ok := h.ledger.ViewEmployee(query.Identity())
	if !ok {
		return GetEmployeeQueryResponse{}, errs.NewNotFoundError("employee", query.Identity().String())
	}

	return GetEmployeeQueryResponse{
		Identity: view.Identity.String(),
		Role:     view.Role.String(),
	}, nil
}
