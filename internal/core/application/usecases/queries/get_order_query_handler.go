package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/pkg/errs"
)

// GetOrderQueryHandler serves full order views from the ledger.
//
// Unlike the status probe (GetOrderStatusQuery), the full view treats an
// unknown id as an error: price, cook, and delivery man have no meaningful
// zero reading.
type GetOrderQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetOrderQueryHandler creates a handler reading from the given ledger.
func NewGetOrderQueryHandler(ledger *memstore.MemoryLedger) GetOrderQueryHandler {
	return GetOrderQueryHandler{ledger: ledger}
}

// Handle returns the order view, or a NotFoundError for ids that were never
// placed or whose record was removed by cancellation.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	view, ok := h.ledger.ViewOrder(query.OrderID())
	if !ok {
		return GetOrderQueryResponse{}, errs.NewNotFoundError("order", query.OrderID())
	}

	resp := GetOrderQueryResponse{
		ID:       view.ID,
		Customer: view.Customer.String(),
		Price:    view.Price.String(),
		Status:   view.Status.String(),
	}
	if view.Cook != nil {
		resp.Cook = view.Cook.String()
	}
	if view.DeliveryMan != nil {
		resp.DeliveryMan = view.DeliveryMan.String()
	}

	return resp, nil
}
