package cmd

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

type CompositionRoot struct {
	ledger     *memstore.MemoryLedger
	uowFactory *memstore.MemoryUnitOfWorkFactory
	notifier   ports.EventNotifier
}

// NewCompositionRoot wires the application around the in-memory ledger.
// A nil notifier (no broker configured) silently drops events; the ledger's
// own event log still records them.
func NewCompositionRoot(_ Config, ledger *memstore.MemoryLedger, notifier ports.EventNotifier) CompositionRoot {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return CompositionRoot{
		ledger:     ledger,
		uowFactory: memstore.NewMemoryUnitOfWorkFactory(ledger),
		notifier:   notifier,
	}
}

func (c *CompositionRoot) CreateUpdateCompanyWalletCommandHandler() commands.UpdateCompanyWalletCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCompanyWalletCommandHandler(f)
}

func (c *CompositionRoot) CreateAddEmployeeCommandHandler() commands.AddEmployeeCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveEmployeeCommandHandler() commands.RemoveEmployeeCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReadyOrderCommandHandler() commands.ReadyOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReadyOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetEmployeeQueryHandler() queries.GetEmployeeQueryHandler {
	return queries.NewGetEmployeeQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetOwnerQueryHandler() queries.GetOwnerQueryHandler {
	return queries.NewGetOwnerQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetCompanyWalletQueryHandler() queries.GetCompanyWalletQueryHandler {
	return queries.NewGetCompanyWalletQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateListEventsQueryHandler() queries.ListEventsQueryHandler {
	return queries.NewListEventsQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetPipelineStatsQueryHandler() queries.GetPipelineStatsQueryHandler {
	return queries.NewGetPipelineStatsQueryHandler(c.ledger)
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, order.Event) error { return nil }
