package order

import (
	"supplychain/internal/pkg/errs"
)

// Status represents the order's position in the fulfillment pipeline.
// It implements a state machine with a strict forward path and one escape:
//
//	NOT_EXISTS -> PLACED -> PREPARING -> READY -> DELIVERING -> COMPLETED
//	                 |
//	                 +-> NOT_EXISTS (cancellation removes the record)
//
// COMPLETED and the cancelled NOT_EXISTS are terminal for an order id.
// No other transition is legal. Each transition method returns the
// successor status or a StateError naming the required predecessor.
type Status int

const (
	// StatusNotExists is the status read for an order id that was never
	// placed or whose record was removed by cancellation.
	StatusNotExists Status = iota

	// StatusPlaced is the initial status of a freshly placed order.
	// The order's price is held in escrow while in this status.
	StatusPlaced

	// StatusPreparing indicates a cook has started preparing the order.
	StatusPreparing

	// StatusReady indicates the kitchen has finished the order.
	StatusReady

	// StatusDelivering indicates a delivery man has taken the order out.
	StatusDelivering

	// StatusCompleted indicates the customer confirmed receipt and the
	// escrowed price was released. Terminal.
	StatusCompleted
)

// getStatusStrings returns a map of Status values to their textual tags.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusNotExists:  "NOT_EXISTS",
		StatusPlaced:     "PLACED",
		StatusPreparing:  "PREPARING",
		StatusReady:      "READY",
		StatusDelivering: "DELIVERING",
		StatusCompleted:  "COMPLETED",
	}
}

// Validate checks that the Status value is one of the defined statuses,
// including StatusNotExists.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValidationError("status")
	}
	return nil
}

// String returns the textual tag of the status, or "NOT_EXISTS" for
// values outside the defined set. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "NOT_EXISTS"
}

// transition moves to next if the current status equals required,
// otherwise reports a StateError carrying the order id for context.
func (s Status) transition(orderID uint64, required, next Status) (Status, error) {
	if s != required {
		return StatusNotExists, errs.NewStateError(orderID, required.String(), s.String())
	}
	return next, nil
}

// Prepare transitions PLACED -> PREPARING.
func (s Status) Prepare(orderID uint64) (Status, error) {
	return s.transition(orderID, StatusPlaced, StatusPreparing)
}

// Ready transitions PREPARING -> READY.
func (s Status) Ready(orderID uint64) (Status, error) {
	return s.transition(orderID, StatusPreparing, StatusReady)
}

// Deliver transitions READY -> DELIVERING.
func (s Status) Deliver(orderID uint64) (Status, error) {
	return s.transition(orderID, StatusReady, StatusDelivering)
}

// Complete transitions DELIVERING -> COMPLETED, the terminal status.
func (s Status) Complete(orderID uint64) (Status, error) {
	return s.transition(orderID, StatusDelivering, StatusCompleted)
}

// Cancel transitions PLACED -> NOT_EXISTS. Cancellation is only legal
// before preparation begins.
func (s Status) Cancel(orderID uint64) (Status, error) {
	return s.transition(orderID, StatusPlaced, StatusNotExists)
}
