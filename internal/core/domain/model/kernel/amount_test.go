package kernel_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	t.Run("positive_amount_is_valid", func(t *testing.T) {
		amount, err := kernel.NewAmount(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Equal(t, "100", amount.String())
	})

	t.Run("zero_amount_is_rejected", func(t *testing.T) {
		_, err := kernel.NewAmount(decimal.Zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_amount_is_rejected", func(t *testing.T) {
		_, err := kernel.NewAmount(decimal.NewFromInt(-5))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAmountFromString(t *testing.T) {
	t.Run("parses_decimal_string", func(t *testing.T) {
		amount, err := kernel.AmountFromString("19.90")

		require.NoError(t, err)
		assert.Equal(t, "19.9", amount.String())
	})

	t.Run("unparseable_string_fails", func(t *testing.T) {
		_, err := kernel.AmountFromString("a lot")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_string_fails", func(t *testing.T) {
		_, err := kernel.AmountFromString("0")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAmount_Add(t *testing.T) {
	a, _ := kernel.AmountFromString("100")
	b, _ := kernel.AmountFromString("50")

	sum := a.Add(b)

	expected, _ := kernel.AmountFromString("150")
	assert.True(t, sum.IsEqual(expected))
}

func TestAmount_ZeroValueIsInvalid(t *testing.T) {
	var amount kernel.Amount

	require.Error(t, amount.Validate())
}
