package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amount is a value object representing a positive monetary value attached
// to an order and custodied in escrow. It wraps a decimal to avoid binary
// floating point drift when balances are credited and debited.
//
// A valid Amount is strictly greater than zero; the zero value is invalid.
// Construct instances with NewAmount or AmountFromString.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount from a decimal value.
// Returns a ValidationError unless the value is strictly positive.
func NewAmount(value decimal.Decimal) (Amount, error) {
	amount := Amount{value: value}
	if err := amount.Validate(); err != nil {
		return Amount{}, err
	}
	return amount, nil
}

// AmountFromString parses an Amount from its decimal string representation,
// e.g. "100" or "19.90". Returns a ValidationError on unparseable input or
// a non-positive value.
func AmountFromString(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValidationErrorWithCause("amount", err)
	}
	return NewAmount(value)
}

// Validate checks that the amount is strictly greater than zero.
func (a Amount) Validate() error {
	if !a.value.IsPositive() {
		return errs.NewValidationErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", a.value))
	}
	return nil
}

// Add returns the sum of two amounts. Used by the escrow bank when
// crediting a recipient balance.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsEqual compares two amounts for numeric equality.
func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}

// String returns the decimal string representation of the amount.
func (a Amount) String() string {
	return a.value.String()
}
