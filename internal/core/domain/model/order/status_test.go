package order_test

import (
	"testing"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusNotExists:  "NOT_EXISTS",
		order.StatusPlaced:     "PLACED",
		order.StatusPreparing:  "PREPARING",
		order.StatusReady:      "READY",
		order.StatusDelivering: "DELIVERING",
		order.StatusCompleted:  "COMPLETED",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "NOT_EXISTS", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusNotExists.Validate())
	require.NoError(t, order.StatusPlaced.Validate())
	require.NoError(t, order.StatusCompleted.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_ForwardPath(t *testing.T) {
	// The happy path walks every forward transition exactly once.
	status := order.StatusPlaced

	status, err := status.Prepare(1)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, status)

	status, err = status.Ready(1)
	require.NoError(t, err)
	assert.Equal(t, order.StatusReady, status)

	status, err = status.Deliver(1)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivering, status)

	status, err = status.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, status)
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("placed_order_can_be_cancelled", func(t *testing.T) {
		status, err := order.StatusPlaced.Cancel(1)

		require.NoError(t, err)
		assert.Equal(t, order.StatusNotExists, status)
	})

	t.Run("cancel_is_illegal_after_preparation_starts", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPreparing,
			order.StatusReady,
			order.StatusDelivering,
			order.StatusCompleted,
		} {
			_, err := status.Cancel(1)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_WrongPredecessorIsStateError(t *testing.T) {
	t.Run("prepare_requires_placed", func(t *testing.T) {
		_, err := order.StatusPreparing.Prepare(7)

		require.ErrorIs(t, err, errs.ErrInvalidState)

		var stateErr *errs.StateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, uint64(7), stateErr.OrderID)
		assert.Equal(t, "PLACED", stateErr.Required)
		assert.Equal(t, "PREPARING", stateErr.Actual)
	})

	t.Run("ready_requires_preparing", func(t *testing.T) {
		_, err := order.StatusPlaced.Ready(1)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("deliver_requires_ready", func(t *testing.T) {
		_, err := order.StatusPlaced.Deliver(1)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("complete_requires_delivering", func(t *testing.T) {
		_, err := order.StatusReady.Complete(1)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		_, err := order.StatusCompleted.Complete(1)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.StatusCompleted.Prepare(1)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
