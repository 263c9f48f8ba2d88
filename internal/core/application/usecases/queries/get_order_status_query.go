package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery probes the lifecycle status of an order id. Unknown
// ids are not an error: they read as NOT_EXISTS, which is also what a
// cancelled order reports after its record is removed.
type GetOrderStatusQuery struct {
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status probe for the given order id.
func NewGetOrderStatusQuery(orderID uint64) GetOrderStatusQuery {
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the probed order id.
func (q GetOrderStatusQuery) OrderID() uint64 {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the status tag for the probed id.
type GetOrderStatusQueryResponse struct {
	ID     uint64 `json:"id"`
	Status string `json:"status"`
}
