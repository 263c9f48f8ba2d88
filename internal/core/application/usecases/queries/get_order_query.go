// Package queries contains the read side of the supply chain: order views,
// registry lookups, balances, the event log, and pipeline statistics.
//
// Query handlers bypass the unit of work and read the ledger directly.
// Reads take the store-wide read lock, so a query never observes a half
// applied write.
package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full view of a single order: customer, price,
// status, and the assigned cook and delivery man once those exist.
type GetOrderQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
func NewGetOrderQuery(orderID uint64) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the targeted order id.
func (q GetOrderQuery) OrderID() uint64 {
	return q.orderID
}

// GetOrderQueryResponse is the full projection of a stored order. Cook and
// DeliveryMan are empty strings until the corresponding stage assigns them.
type GetOrderQueryResponse struct {
	ID          uint64 `json:"id"`
	Customer    string `json:"customer"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	Cook        string `json:"cook,omitempty"`
	DeliveryMan string `json:"delivery_man,omitempty"`
}
