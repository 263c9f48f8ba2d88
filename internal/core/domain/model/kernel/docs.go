// Package kernel contains the shared value objects of the supply chain
// domain model.
//
// The package includes:
//   - Identity: an opaque, globally unique principal reference used for
//     both authorization and fund-transfer addressing
//   - Amount: a positive monetary value escrowed against an order
//
// Both types are immutable value objects. Their zero values are invalid and
// must be rejected by Validate; valid instances are only produced by the
// constructor functions.
package kernel
