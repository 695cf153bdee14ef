package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/pgtest"
	"shop/internal/adapters/out/postgres/querystats"
	"shop/internal/core/application/seed"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var orderDate = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// readUoWFactory narrows the GORM unit of work factory to the read side interface.
type readUoWFactory struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (f readUoWFactory) Create() queries.ReadUoW {
	return f.factory.Create()
}

// QueriesIntegrationTestSuite runs every read use case against PostgreSQL loaded with
// the demo data set and checks the number of statements each strategy sends.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  readUoWFactory
	demo     *seed.Demo
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = readUoWFactory{factory: postgres.NewGormUnitOfWorkFactory(database.DB, nil)}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	demo, err := seed.LoadDemo(context.Background(), suite.factory.factory, orderDate)
	suite.Require().NoError(err)
	suite.demo = demo
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) expectedViews() []queries.OrderView {
	return []queries.OrderView{
		{
			OrderID:    suite.demo.Orders[0].ID(),
			MemberName: "userA",
			OrderDate:  orderDate,
			Status:     order.Ordered,
			Address:    kernel.NewAddress("Seoul", "1", "1111"),
			Items: []queries.OrderItemView{
				{ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1},
				{ItemName: "JPA2 BOOK", OrderPrice: 20000, Count: 2},
			},
		},
		{
			OrderID:    suite.demo.Orders[1].ID(),
			MemberName: "userB",
			OrderDate:  orderDate.Add(time.Second),
			Status:     order.Ordered,
			Address:    kernel.NewAddress("Busan", "2", "2222"),
			Items: []queries.OrderItemView{
				{ItemName: "SPRING1 BOOK", OrderPrice: 20000, Count: 3},
				{ItemName: "SPRING2 BOOK", OrderPrice: 40000, Count: 4},
			},
		},
	}
}

func (suite *QueriesIntegrationTestSuite) listOrders(
	settings queries.ReadSettings,
	strategy queries.Strategy,
	search ports.OrderSearch,
	page *ports.Page,
) ([]queries.OrderView, int64) {
	ctx, counter := querystats.WithCounter(suite.T().Context())

	query, err := queries.NewListOrdersQuery(strategy, search, page)
	suite.Require().NoError(err)

	handler := queries.NewListOrdersQueryHandler(suite.factory, suite.database.DB, settings)
	views, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	return inUTC(views), counter.Count()
}

func inUTC(views []queries.OrderView) []queries.OrderView {
	for i := range views {
		views[i].OrderDate = views[i].OrderDate.UTC()
	}
	return views
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_EveryStrategyReturnsTheSameOrders() {
	tests := []struct {
		strategy   queries.Strategy
		statements int64
	}{
		// 1 order list, 2 members, 2 deliveries, 2 order item lists, 4 items
		{queries.LazyLoad, 11},
		{queries.FetchJoin, 1},
		{queries.BatchFetch, 2},
		{queries.DirectPerOrder, 3},
		{queries.Direct, 2},
		{queries.Flat, 1},
	}

	for _, tt := range tests {
		suite.Run(tt.strategy.String(), func() {
			views, statements := suite.listOrders(queries.ReadSettings{}, tt.strategy, ports.OrderSearch{}, nil)

			suite.Equal(suite.expectedViews(), views)
			suite.Equal(tt.statements, statements)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_BatchFetchSize() {
	settings := queries.ReadSettings{BatchFetchSize: 1}

	views, statements := suite.listOrders(settings, queries.BatchFetch, ports.OrderSearch{}, nil)

	suite.Equal(suite.expectedViews(), views)
	suite.Equal(int64(3), statements)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Paging() {
	expected := suite.expectedViews()
	first, err := ports.NewPage(0, 1)
	suite.Require().NoError(err)
	second, err := ports.NewPage(1, 1)
	suite.Require().NoError(err)
	beyond, err := ports.NewPage(2, 1)
	suite.Require().NoError(err)

	for _, strategy := range []queries.Strategy{queries.BatchFetch, queries.DirectPerOrder, queries.Direct} {
		suite.Run(strategy.String(), func() {
			views, _ := suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{}, &first)
			suite.Equal(expected[:1], views)

			views, _ = suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{}, &second)
			suite.Equal(expected[1:], views)

			views, _ = suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{}, &beyond)
			suite.Empty(views)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Search() {
	expected := suite.expectedViews()
	canceled := order.Canceled
	byStatus, err := ports.NewOrderSearch("", &canceled)
	suite.Require().NoError(err)

	for _, strategy := range []queries.Strategy{queries.LazyLoad, queries.DirectPerOrder, queries.Direct, queries.Flat} {
		suite.Run(strategy.String(), func() {
			views, _ := suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{MemberName: "B"}, nil)
			suite.Equal(expected[1:], views)

			views, _ = suite.listOrders(queries.ReadSettings{}, strategy, byStatus, nil)
			suite.Empty(views)

			views, _ = suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{MemberName: "%"}, nil)
			suite.Empty(views)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FetchJoinIgnoresSearch() {
	views, _ := suite.listOrders(queries.ReadSettings{}, queries.FetchJoin, ports.OrderSearch{MemberName: "B"}, nil)

	suite.Len(views, 2)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_OrderWithoutItemsAppearsOnce() {
	orderID := suite.insertOrderWithoutItems()

	for _, strategy := range []queries.Strategy{
		queries.LazyLoad, queries.FetchJoin, queries.BatchFetch,
		queries.DirectPerOrder, queries.Direct, queries.Flat,
	} {
		suite.Run(strategy.String(), func() {
			views, _ := suite.listOrders(queries.ReadSettings{}, strategy, ports.OrderSearch{}, nil)

			suite.Require().Len(views, 3)
			suite.Equal(orderID, views[2].OrderID.Bytes())
			suite.Equal("userC", views[2].MemberName)
			suite.NotNil(views[2].Items)
			suite.Empty(views[2].Items)
		})
	}
}

// insertOrderWithoutItems writes an order that the domain could not build, the way
// the tables would hold it after a manual fix.
func (suite *QueriesIntegrationTestSuite) insertOrderWithoutItems() uuid.UUID {
	db := suite.database.DB
	memberID, deliveryID, orderID := uuid.New(), uuid.New(), uuid.New()

	suite.Require().NoError(db.Exec(
		"INSERT INTO members (id, name, city, street, zipcode) VALUES (?, ?, ?, ?, ?)",
		memberID, "userC", "Daegu", "3", "3333",
	).Error)
	suite.Require().NoError(db.Exec(
		"INSERT INTO deliveries (id, city, street, zipcode, status) VALUES (?, ?, ?, ?, ?)",
		deliveryID, "Daegu", "3", "3333", "READY",
	).Error)
	suite.Require().NoError(db.Exec(
		"INSERT INTO orders (id, member_id, delivery_id, order_date, status) VALUES (?, ?, ?, ?, ?)",
		orderID, memberID, deliveryID, orderDate.Add(time.Hour), "ORDERED",
	).Error)

	return orderID
}

func (suite *QueriesIntegrationTestSuite) TestListOrderRows() {
	ctx, counter := querystats.WithCounter(suite.T().Context())

	rows, err := queries.NewListOrderRowsQueryHandler(suite.database.DB).
		Handle(ctx, queries.NewListOrderRowsQuery(ports.OrderSearch{}))
	suite.Require().NoError(err)

	suite.Len(rows, 4)
	suite.Equal(int64(1), counter.Count())
	suite.Equal(suite.expectedViews(), inUTC(queries.RegroupOrderRows(rows)))
}

func (suite *QueriesIntegrationTestSuite) TestListOrderEntities_ResolvesTheWholeGraph() {
	ctx := suite.T().Context()

	orders, err := queries.NewListOrderEntitiesQueryHandler(suite.factory, 0).
		Handle(ctx, queries.NewListOrderEntitiesQuery(ports.OrderSearch{}))
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	o := orders[0]
	m, err := o.Member().Get()
	suite.Require().NoError(err)
	suite.Equal("userA", m.Name())

	d, err := o.Delivery().Get()
	suite.Require().NoError(err)
	suite.Equal(order.Ready, d.Status())

	total, err := o.TotalPrice()
	suite.Require().NoError(err)
	suite.Equal(50000, total)

	orderItems, err := o.OrderItems().Get()
	suite.Require().NoError(err)
	for _, oi := range orderItems {
		it, err := oi.Item().Get()
		suite.Require().NoError(err)
		suite.Equal(100-oi.Count(), it.StockQuantity())
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOrderEntities_LazyListLimit() {
	orders, err := queries.NewListOrderEntitiesQueryHandler(suite.factory, 1).
		Handle(suite.T().Context(), queries.NewListOrderEntitiesQuery(ports.OrderSearch{}))
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(suite.demo.Orders[0].ID(), orders[0].ID())
}

func (suite *QueriesIntegrationTestSuite) TestListOrderSummaries() {
	expected := suite.expectedViews()

	tests := []struct {
		strategy   queries.Strategy
		statements int64
	}{
		{queries.LazyLoad, 5},
		{queries.FetchJoin, 1},
		{queries.Direct, 1},
	}

	for _, tt := range tests {
		suite.Run(tt.strategy.String(), func() {
			ctx, counter := querystats.WithCounter(suite.T().Context())
			query, err := queries.NewListOrderSummariesQuery(tt.strategy)
			suite.Require().NoError(err)

			summaries, err := queries.NewListOrderSummariesQueryHandler(suite.factory, suite.database.DB, 0).Handle(ctx, query)
			suite.Require().NoError(err)

			suite.Require().Len(summaries, 2)
			for i, s := range summaries {
				suite.Equal(expected[i].OrderID, s.OrderID)
				suite.Equal(expected[i].MemberName, s.MemberName)
				suite.True(expected[i].OrderDate.Equal(s.OrderDate))
				suite.Equal(expected[i].Status, s.Status)
				suite.Equal(expected[i].Address, s.Address)
			}
			suite.Equal(tt.statements, counter.Count())
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListMembers() {
	members, err := queries.NewListMembersQueryHandler(suite.factory).
		Handle(suite.T().Context(), queries.NewListMembersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(members, 2)
	suite.Equal("userA", members[0].Name)
	suite.Equal(kernel.NewAddress("Seoul", "1", "1111"), members[0].Address)
	suite.Equal("userB", members[1].Name)
}

func (suite *QueriesIntegrationTestSuite) TestListItems() {
	items, err := queries.NewListItemsQueryHandler(suite.factory).
		Handle(suite.T().Context(), queries.NewListItemsQuery())
	suite.Require().NoError(err)

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	suite.Equal([]string{"JPA1 BOOK", "JPA2 BOOK", "SPRING1 BOOK", "SPRING2 BOOK"}, names)
	suite.Equal(99, items[0].StockQuantity)
	suite.Equal("BOOK", items[0].Kind.String())
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
