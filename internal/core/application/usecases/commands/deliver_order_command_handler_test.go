package commands_test

import (
	"errors"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cook := kernel.NewIdentity()
	deliveryMan := kernel.NewIdentity()
	customer := kernel.NewIdentity()

	aggregate := placedOrder(t, 12, customer)
	require.NoError(t, aggregate.Prepare(cook))
	require.NoError(t, aggregate.Ready())

	cmd, err := commands.NewDeliverOrderCommand(deliveryMan, 12)
	require.NoError(t, err)

	registry := new(RegistryRepoMock)
	orderRepo := new(OrderRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(OrderUoWFactoryMock)
	notifier := new(NotifierMock)

	expectedEvent := order.InDeliveryEvent{ID: uint64(12), DeliveryMan: deliveryMan}

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegistryRepository").Return(registry).Once(),
		registry.On("IsEmployee", ctx, deliveryMan).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(12)).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("RegisterEvent", expectedEvent).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, expectedEvent).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivering, aggregate.Status())
	require.NotNil(t, aggregate.DeliveryMan())
	assert.True(t, aggregate.DeliveryMan().IsEqual(deliveryMan))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NonEmployee(t *testing.T) {
	ctx := t.Context()
	stranger := kernel.NewIdentity()

	cmd, err := commands.NewDeliverOrderCommand(stranger, 12)
	require.NoError(t, err)

	registry := new(RegistryRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(OrderUoWFactoryMock)
	notifier := new(NotifierMock)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegistryRepository").Return(registry).Once(),
		registry.On("IsEmployee", ctx, stranger).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestDeliverOrderCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	deliveryMan := kernel.NewIdentity()
	customer := kernel.NewIdentity()
	aggregate := placedOrder(t, 13, customer) // PLACED, not READY

	cmd, err := commands.NewDeliverOrderCommand(deliveryMan, 13)
	require.NoError(t, err)

	registry := new(RegistryRepoMock)
	orderRepo := new(OrderRepoMock)
	uow := new(UnitOfWorkMock)
	factory := new(OrderUoWFactoryMock)
	notifier := new(NotifierMock)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegistryRepository").Return(registry).Once(),
		registry.On("IsEmployee", ctx, deliveryMan).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, uint64(13)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
