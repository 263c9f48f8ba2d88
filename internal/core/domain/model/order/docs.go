// Package order provides the order aggregate and its lifecycle state
// machine, the core of the supply chain domain.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the escrowed price,
//     and the identities who performed each fulfillment step
//   - Status: a state machine enforcing the strict forward fulfillment path
//   - Event: the domain events emitted for each successful transition
//
// Key business rules:
//   - The status path is PLACED -> PREPARING -> READY -> DELIVERING ->
//     COMPLETED, with a single escape hatch: a PLACED order may be
//     cancelled, which removes the record entirely
//   - The price is fixed at placement and immutable thereafter
//   - The cook and delivery man are recorded exactly once, at the
//     transition each of them performs
//
// Cancellation is only possible before preparation begins: once work has
// started there is sunk cost, so backing out is intentionally disallowed.
package order
