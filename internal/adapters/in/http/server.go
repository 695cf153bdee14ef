package http

import (
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP requests of the API document by calling the application
// use cases.
type Server struct {
	// Command handlers
	registerMemberHandler   commands.RegisterMemberCommandHandler
	updateMemberNameHandler commands.UpdateMemberNameCommandHandler
	createItemHandler       commands.CreateItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	listMembersHandler        queries.ListMembersQueryHandler
	listItemsHandler          queries.ListItemsQueryHandler
	listOrdersHandler         queries.ListOrdersQueryHandler
	listOrderEntitiesHandler  queries.ListOrderEntitiesQueryHandler
	listOrderRowsHandler      queries.ListOrderRowsQueryHandler
	listOrderSummariesHandler queries.ListOrderSummariesQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	RegisterMember   commands.RegisterMemberCommandHandler
	UpdateMemberName commands.UpdateMemberNameCommandHandler
	CreateItem       commands.CreateItemCommandHandler
	PlaceOrder       commands.PlaceOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler

	ListMembers        queries.ListMembersQueryHandler
	ListItems          queries.ListItemsQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	ListOrderEntities  queries.ListOrderEntitiesQueryHandler
	ListOrderRows      queries.ListOrderRowsQueryHandler
	ListOrderSummaries queries.ListOrderSummariesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		registerMemberHandler:     h.RegisterMember,
		updateMemberNameHandler:   h.UpdateMemberName,
		createItemHandler:         h.CreateItem,
		placeOrderHandler:         h.PlaceOrder,
		cancelOrderHandler:        h.CancelOrder,
		completeDeliveryHandler:   h.CompleteDelivery,
		listMembersHandler:        h.ListMembers,
		listItemsHandler:          h.ListItems,
		listOrdersHandler:         h.ListOrders,
		listOrderEntitiesHandler:  h.ListOrderEntities,
		listOrderRowsHandler:      h.ListOrderRows,
		listOrderSummariesHandler: h.ListOrderSummaries,
		logger:                    logger.With("component", "http_server"),
	}
}

// RegisterMember handles POST /api/members.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var body NewMember
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMemberCommand(memberID, body.Name, body.Address.toDomain())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerMemberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: memberID.Bytes()})
}

// ListMembers handles GET /api/members.
func (s *Server) ListMembers(ctx echo.Context) error {
	members, err := s.listMembersHandler.Handle(ctx.Request().Context(), queries.NewListMembersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, membersOf(members))
}

// UpdateMemberName handles PUT /api/members/:id.
func (s *Server) UpdateMemberName(ctx echo.Context) error {
	memberID, err := bindID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid member id")
	}

	var body MemberName
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMemberNameCommand(memberID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateMemberNameHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RenamedMember{ID: memberID.Bytes(), Name: cmd.Name()})
}

// CreateItem handles POST /api/items.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body NewItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := body.toDomain()
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, body.Name, body.Price, body.StockQuantity, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.Bytes()})
}

// ListItems handles GET /api/items.
func (s *Server) ListItems(ctx echo.Context) error {
	items, err := s.listItemsHandler.Handle(ctx.Request().Context(), queries.NewListItemsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemsOf(items))
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromBytes(body.MemberID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	itemID, err := kernel.UUIDFromBytes(body.ItemID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, memberID, commands.OrderLine{ItemID: itemID, Count: body.Count})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := bindID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/orders/:id/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := bindID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrderEntities handles GET /api/v1/orders.
func (s *Server) ListOrderEntities(ctx echo.Context) error {
	search, err := bindOrderSearch(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.listOrderEntitiesHandler.Handle(ctx.Request().Context(), queries.NewListOrderEntitiesQuery(search))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := orderEntitiesOf(orders)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListOrderRows handles GET /api/v6/orders.
func (s *Server) ListOrderRows(ctx echo.Context) error {
	search, err := bindOrderSearch(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.listOrderRowsHandler.Handle(ctx.Request().Context(), queries.NewListOrderRowsQuery(search))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderRowsOf(rows))
}

// ListOrders returns the handler of an order view listing backed by strategy.
// The search and page parameters are read only when the strategy supports them.
// BatchFetch always pages, with the default page when none is given.
func (s *Server) ListOrders(strategy queries.Strategy) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var search ports.OrderSearch
		if strategy.SupportsSearch() {
			var err error
			if search, err = bindOrderSearch(ctx); err != nil {
				return badRequest(ctx, err.Error())
			}
		}

		var page *ports.Page
		if strategy.SupportsPaging() {
			var err error
			if page, err = bindPage(ctx, strategy == queries.BatchFetch); err != nil {
				return badRequest(ctx, err.Error())
			}
		}

		query, err := queries.NewListOrdersQuery(strategy, search, page)
		if err != nil {
			return s.fail(ctx, err)
		}

		orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.fail(ctx, err)
		}

		return ctx.JSON(http.StatusOK, ordersOf(orders))
	}
}

// ListOrderSummaries returns the handler of a simple-orders listing backed by strategy.
func (s *Server) ListOrderSummaries(strategy queries.Strategy) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		query, err := queries.NewListOrderSummariesQuery(strategy)
		if err != nil {
			return s.fail(ctx, err)
		}

		summaries, err := s.listOrderSummariesHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.fail(ctx, err)
		}

		return ctx.JSON(http.StatusOK, orderSummariesOf(summaries))
	}
}
