package commands_test

import (
	"context"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/staff"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RegistryRepoMock struct{ mock.Mock }

func (m *RegistryRepoMock) Owner(ctx context.Context) (kernel.Identity, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Identity), args.Error(1)
}

func (m *RegistryRepoMock) CompanyWallet(ctx context.Context) (kernel.Identity, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Identity), args.Error(1)
}

func (m *RegistryRepoMock) SetCompanyWallet(ctx context.Context, identity kernel.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *RegistryRepoMock) UpsertEmployee(ctx context.Context, employee *staff.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *RegistryRepoMock) RemoveEmployee(ctx context.Context, identity kernel.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *RegistryRepoMock) GetEmployee(ctx context.Context, identity kernel.Identity) (*staff.Employee, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *RegistryRepoMock) IsEmployee(ctx context.Context, identity kernel.Identity) (bool, error) {
	args := m.Called(ctx, identity)
	return args.Bool(0), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) NextID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *OrderRepoMock) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *OrderRepoMock) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *OrderRepoMock) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderRepoMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type EscrowMock struct{ mock.Mock }

func (m *EscrowMock) Hold(ctx context.Context, orderID uint64, amount kernel.Amount) error {
	args := m.Called(ctx, orderID, amount)
	return args.Error(0)
}

func (m *EscrowMock) Release(ctx context.Context, orderID uint64, to kernel.Identity) error {
	args := m.Called(ctx, orderID, to)
	return args.Error(0)
}

func (m *EscrowMock) Refund(ctx context.Context, orderID uint64, to kernel.Identity) error {
	args := m.Called(ctx, orderID, to)
	return args.Error(0)
}

// UnitOfWorkMock covers the full unit of work surface, so it can stand in
// for any of the narrowed interfaces a handler depends on.
type UnitOfWorkMock struct{ mock.Mock }

func (m *UnitOfWorkMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWorkMock) RegistryRepository() ports.RegistryRepository {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository)
}

func (m *UnitOfWorkMock) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *UnitOfWorkMock) Escrow() ports.EscrowService {
	args := m.Called()
	return args.Get(0).(ports.EscrowService)
}

func (m *UnitOfWorkMock) RegisterEvent(event order.Event) {
	m.Called(event)
}

type RegistryUoWFactoryMock struct{ mock.Mock }

func (m *RegistryUoWFactoryMock) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type OrderUoWFactoryMock struct{ mock.Mock }

func (m *OrderUoWFactoryMock) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type EscrowUoWFactoryMock struct{ mock.Mock }

func (m *EscrowUoWFactoryMock) Create() commands.EscrowUoW {
	args := m.Called()
	return args.Get(0).(commands.EscrowUoW)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func mustAmount(t *testing.T, s string) kernel.Amount {
	t.Helper()
	amount, err := kernel.AmountFromString(s)
	require.NoError(t, err)
	return amount
}

func placedOrder(t *testing.T, id uint64, customer kernel.Identity) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(id, customer, mustAmount(t, "25.50"))
	require.NoError(t, err)
	return aggregate
}
