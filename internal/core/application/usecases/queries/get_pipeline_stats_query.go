package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetPipelineStatsQueryIsNotConstructed = errors.New(
	"GetPipelineStatsQuery must be created via NewGetPipelineStatsQuery constructor",
)

// GetPipelineStatsQuery retrieves the count of live orders per lifecycle
// stage. Cancelled orders leave no record and are not counted.
type GetPipelineStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPipelineStatsQuery creates a parameterless statistics query.
func NewGetPipelineStatsQuery() GetPipelineStatsQuery {
	return GetPipelineStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPipelineStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineStatsQueryIsNotConstructed)
}

// GetPipelineStatsQueryResponse carries per-stage order counts keyed by
// status tag, plus the total number of live orders.
type GetPipelineStatsQueryResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
