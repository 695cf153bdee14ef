package cmd

import (
	"log/slog"

	"shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

// UnitOfWorkFactory is used by the demo data loader.
func (c *CompositionRoot) UnitOfWorkFactory() *postgres.GormUnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) CreateRegisterMemberCommandHandler() commands.RegisterMemberCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMemberNameCommandHandler() commands.UpdateMemberNameCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMemberNameCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateListMembersQueryHandler() queries.ListMembersQueryHandler {
	return queries.NewListMembersQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateListItemsQueryHandler() queries.ListItemsQueryHandler {
	return queries.NewListItemsQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readUoWFactory(), c.gormDB, queries.ReadSettings{
		BatchFetchSize: c.config.BatchFetchSize,
		LazyListLimit:  c.config.LazyListLimit,
	})
}

func (c *CompositionRoot) CreateListOrderEntitiesQueryHandler() queries.ListOrderEntitiesQueryHandler {
	return queries.NewListOrderEntitiesQueryHandler(c.readUoWFactory(), c.config.LazyListLimit)
}

func (c *CompositionRoot) CreateListOrderRowsQueryHandler() queries.ListOrderRowsQueryHandler {
	return queries.NewListOrderRowsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderSummariesQueryHandler() queries.ListOrderSummariesQueryHandler {
	return queries.NewListOrderSummariesQueryHandler(c.readUoWFactory(), c.gormDB, c.config.LazyListLimit)
}

// CreateHTTPServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		RegisterMember:   c.CreateRegisterMemberCommandHandler(),
		UpdateMemberName: c.CreateUpdateMemberNameCommandHandler(),
		CreateItem:       c.CreateCreateItemCommandHandler(),
		PlaceOrder:       c.CreatePlaceOrderCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),

		ListMembers:        c.CreateListMembersQueryHandler(),
		ListItems:          c.CreateListItemsQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		ListOrderEntities:  c.CreateListOrderEntitiesQueryHandler(),
		ListOrderRows:      c.CreateListOrderRowsQueryHandler(),
		ListOrderSummaries: c.CreateListOrderSummariesQueryHandler(),
	}, c.logger)
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
