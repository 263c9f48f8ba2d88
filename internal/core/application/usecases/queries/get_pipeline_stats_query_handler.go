package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
)

// GetPipelineStatsQueryHandler aggregates live order counts per stage.
// The periodic pipeline report job uses the same handler the HTTP
// adapter does.
type GetPipelineStatsQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetPipelineStatsQueryHandler creates a handler reading from the given ledger.
func NewGetPipelineStatsQueryHandler(ledger *memstore.MemoryLedger) GetPipelineStatsQueryHandler {
	return GetPipelineStatsQueryHandler{ledger: ledger}
}

// Handle returns per-stage counts keyed by the status tag.
func (h GetPipelineStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPipelineStatsQuery,
) (GetPipelineStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPipelineStatsQueryResponse{}, err
	}

	counts := make(map[string]int)
	total := 0
	for status, count := range h.ledger.CountByStatus() {
		counts[status.String()] = count
		total += count
	}

	return GetPipelineStatsQueryResponse{Counts: counts, Total: total}, nil
}
