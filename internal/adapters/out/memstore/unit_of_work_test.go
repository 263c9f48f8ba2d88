package memstore_test

import (
	"sync"
	"testing"

	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/staff"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) (*memstore.MemoryLedger, kernel.Identity) {
	t.Helper()
	deployer := kernel.NewIdentity()
	ledger, err := memstore.NewMemoryLedger(deployer)
	require.NoError(t, err)
	return ledger, deployer
}

func mustAmount(t *testing.T, s string) kernel.Amount {
	t.Helper()
	amount, err := kernel.AmountFromString(s)
	require.NoError(t, err)
	return amount
}

func TestNewMemoryLedger(t *testing.T) {
	t.Run("owner_and_wallet_start_as_deployer", func(t *testing.T) {
		ledger, deployer := newLedger(t)

		assert.True(t, ledger.OwnerIdentity().IsEqual(deployer))
		assert.True(t, ledger.CompanyWalletIdentity().IsEqual(deployer))
		assert.Empty(t, ledger.Events())
	})

	t.Run("zero_deployer_is_rejected", func(t *testing.T) {
		var zero kernel.Identity
		_, err := memstore.NewMemoryLedger(zero)
		require.Error(t, err)
	})
}

func TestMemoryUnitOfWork_CommitAppliesStagedState(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	customer := kernel.NewIdentity()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	id, err := uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	aggregate, err := order.NewOrder(id, customer, mustAmount(t, "100"))
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Escrow().Hold(ctx, id, aggregate.Price()))
	uow.RegisterEvent(order.PlacedEvent{ID: id, Customer: customer, Price: aggregate.Price()})

	// Nothing is observable before Commit.
	assert.Equal(t, order.StatusNotExists, ledger.OrderStatus(id))
	assert.Empty(t, ledger.Events())

	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, order.StatusPlaced, ledger.OrderStatus(id))
	held, ok := ledger.HeldAmount(id)
	require.True(t, ok)
	assert.True(t, held.IsEqual(mustAmount(t, "100")))
	require.Len(t, ledger.Events(), 1)
	assert.Equal(t, "OrderPlaced", ledger.Events()[0].Name())
}

func TestMemoryUnitOfWork_RollbackLeavesLedgerUnchanged(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	id, err := uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(id, kernel.NewIdentity(), mustAmount(t, "100"))
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Escrow().Hold(ctx, id, aggregate.Price()))
	uow.RegisterEvent(order.PlacedEvent{ID: id})

	require.NoError(t, uow.Rollback(ctx))

	assert.Equal(t, order.StatusNotExists, ledger.OrderStatus(id))
	_, ok := ledger.HeldAmount(id)
	assert.False(t, ok)
	assert.Empty(t, ledger.Events())

	// The rolled-back id returns to the pool.
	uow2 := factory.Create()
	require.NoError(t, uow2.Begin(ctx))
	id2, err := uow2.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id2)
	require.NoError(t, uow2.Rollback(ctx))
}

func TestMemoryUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	uow := memstore.NewMemoryUnitOfWorkFactory(ledger).Create()

	require.ErrorIs(t, uow.Commit(ctx), memstore.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), memstore.ErrNoActiveTransaction)
}

func TestMemoryUnitOfWork_IDAllocationIsGaplessAndMonotonic(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	place := func() uint64 {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		id, err := uow.OrderRepository().NextID(ctx)
		require.NoError(t, err)
		aggregate, err := order.NewOrder(id, kernel.NewIdentity(), mustAmount(t, "10"))
		require.NoError(t, err)
		require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
		require.NoError(t, uow.Commit(ctx))
		return id
	}

	assert.Equal(t, uint64(1), place())
	assert.Equal(t, uint64(2), place())
	assert.Equal(t, uint64(3), place())
}

func TestMemoryUnitOfWork_ConcurrentPlacementsAllocateUniqueIDs(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	const placements = 20
	ids := make(chan uint64, placements)

	var wg sync.WaitGroup
	for range placements {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			id, err := uow.OrderRepository().NextID(ctx)
			if err != nil {
				_ = uow.Rollback(ctx)
				return
			}
			aggregate, err := order.NewOrder(id, kernel.NewIdentity(), mustAmount(t, "10"))
			if err != nil {
				_ = uow.Rollback(ctx)
				return
			}
			if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
				_ = uow.Rollback(ctx)
				return
			}
			if err := uow.Commit(ctx); err != nil {
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, placements)
}

func TestMemOrderRepository_GetAndDelete(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	// Seed one order.
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	id, _ := uow.OrderRepository().NextID(ctx)
	aggregate, err := order.NewOrder(id, kernel.NewIdentity(), mustAmount(t, "50"))
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	t.Run("get_rehydrates_aggregate", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		got, err := uow.OrderRepository().Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, order.StatusPlaced, got.Status())
	})

	t.Run("get_unknown_id_is_not_found", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		_, err := uow.OrderRepository().Get(ctx, 99)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete_removes_record_on_commit", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Delete(ctx, id))

		// Still visible outside the transaction until commit.
		assert.Equal(t, order.StatusPlaced, ledger.OrderStatus(id))

		require.NoError(t, uow.Commit(ctx))
		assert.Equal(t, order.StatusNotExists, ledger.OrderStatus(id))
	})
}

func TestMemEscrowService(t *testing.T) {
	ctx := t.Context()

	seedHold := func(t *testing.T, ledger *memstore.MemoryLedger, factory *memstore.MemoryUnitOfWorkFactory, id uint64, amount kernel.Amount) {
		t.Helper()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Escrow().Hold(ctx, id, amount))
		require.NoError(t, uow.Commit(ctx))
	}

	t.Run("release_credits_recipient_and_clears_hold", func(t *testing.T) {
		ledger, _ := newLedger(t)
		factory := memstore.NewMemoryUnitOfWorkFactory(ledger)
		seedHold(t, ledger, factory, 1, mustAmount(t, "100"))

		wallet := kernel.NewIdentity()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Escrow().Release(ctx, 1, wallet))
		require.NoError(t, uow.Commit(ctx))

		assert.True(t, ledger.BalanceOf(wallet).Equal(decimal.NewFromInt(100)))
		_, ok := ledger.HeldAmount(1)
		assert.False(t, ok)
	})

	t.Run("refund_credits_customer", func(t *testing.T) {
		ledger, _ := newLedger(t)
		factory := memstore.NewMemoryUnitOfWorkFactory(ledger)
		seedHold(t, ledger, factory, 2, mustAmount(t, "50"))

		customer := kernel.NewIdentity()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Escrow().Refund(ctx, 2, customer))
		require.NoError(t, uow.Commit(ctx))

		assert.True(t, ledger.BalanceOf(customer).Equal(decimal.NewFromInt(50)))
	})

	t.Run("release_without_hold_is_transfer_error", func(t *testing.T) {
		ledger, _ := newLedger(t)
		factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		err := uow.Escrow().Release(ctx, 7, kernel.NewIdentity())
		require.ErrorIs(t, err, errs.ErrTransferFailed)
	})

	t.Run("double_release_within_one_uow_fails", func(t *testing.T) {
		ledger, _ := newLedger(t)
		factory := memstore.NewMemoryUnitOfWorkFactory(ledger)
		seedHold(t, ledger, factory, 3, mustAmount(t, "10"))

		wallet := kernel.NewIdentity()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		require.NoError(t, uow.Escrow().Release(ctx, 3, wallet))
		require.ErrorIs(t, uow.Escrow().Release(ctx, 3, wallet), errs.ErrTransferFailed)
	})

	t.Run("hold_over_existing_hold_fails", func(t *testing.T) {
		ledger, _ := newLedger(t)
		factory := memstore.NewMemoryUnitOfWorkFactory(ledger)
		seedHold(t, ledger, factory, 4, mustAmount(t, "10"))

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		require.ErrorIs(t, uow.Escrow().Hold(ctx, 4, mustAmount(t, "10")), errs.ErrTransferFailed)
	})
}

func TestMemRegistryRepository(t *testing.T) {
	ctx := t.Context()
	ledger, deployer := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	t.Run("owner_is_fixed", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		owner, err := uow.RegistryRepository().Owner(ctx)
		require.NoError(t, err)
		assert.True(t, owner.IsEqual(deployer))
	})

	t.Run("set_company_wallet_commits", func(t *testing.T) {
		wallet := kernel.NewIdentity()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.RegistryRepository().SetCompanyWallet(ctx, wallet))
		require.NoError(t, uow.Commit(ctx))

		assert.True(t, ledger.CompanyWalletIdentity().IsEqual(wallet))
	})

	t.Run("upsert_overwrites_role", func(t *testing.T) {
		identity := kernel.NewIdentity()
		cook, _ := staff.NewEmployee(identity, staff.RoleCook)
		deliveryMan, _ := staff.NewEmployee(identity, staff.RoleDeliveryMan)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.RegistryRepository().UpsertEmployee(ctx, cook))
		require.NoError(t, uow.Commit(ctx))

		uow = factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.RegistryRepository().UpsertEmployee(ctx, deliveryMan))
		require.NoError(t, uow.Commit(ctx))

		view, ok := ledger.ViewEmployee(identity)
		require.True(t, ok)
		assert.Equal(t, staff.RoleDeliveryMan, view.Role)
	})

	t.Run("remove_missing_employee_is_not_found", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		err := uow.RegistryRepository().RemoveEmployee(ctx, kernel.NewIdentity())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("remove_then_is_employee_sees_staged_delete", func(t *testing.T) {
		identity := kernel.NewIdentity()
		cook, _ := staff.NewEmployee(identity, staff.RoleCook)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.RegistryRepository().UpsertEmployee(ctx, cook))
		require.NoError(t, uow.Commit(ctx))

		uow = factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.RegistryRepository().RemoveEmployee(ctx, identity))

		isEmployee, err := uow.RegistryRepository().IsEmployee(ctx, identity)
		require.NoError(t, err)
		assert.False(t, isEmployee)

		require.NoError(t, uow.Commit(ctx))
		_, ok := ledger.ViewEmployee(identity)
		assert.False(t, ok)
	})
}

func TestMemoryLedger_CountByStatus(t *testing.T) {
	ctx := t.Context()
	ledger, _ := newLedger(t)
	factory := memstore.NewMemoryUnitOfWorkFactory(ledger)

	for range 3 {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		id, _ := uow.OrderRepository().NextID(ctx)
		aggregate, err := order.NewOrder(id, kernel.NewIdentity(), mustAmount(t, "10"))
		require.NoError(t, err)
		require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
		require.NoError(t, uow.Commit(ctx))
	}

	counts := ledger.CountByStatus()
	assert.Equal(t, 3, counts[order.StatusPlaced])
	assert.Equal(t, 0, counts[order.StatusCompleted])
}
