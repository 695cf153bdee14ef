package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/pgtest"
	"shop/internal/adapters/out/postgres/querystats"
	"shop/internal/core/application/seed"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var orderDate = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite runs the order repository against PostgreSQL
// loaded with the demo data set.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	demo       *seed.Demo
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	demo, err := seed.LoadDemo(context.Background(), postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, nil), orderDate)
	suite.Require().NoError(err)
	suite.demo = demo

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) inTx(fn func(repository *orderrepo.GormOrderRepository)) {
	err := suite.database.DB.Transaction(func(tx *gorm.DB) error {
		fn(orderrepo.NewGormOrderRepository(tx, suite.tracker))
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LoadsDeliveryAndOrderItems() {
	ctx := suite.T().Context()
	placed := suite.demo.Orders[0]

	suite.inTx(func(repository *orderrepo.GormOrderRepository) {
		o, err := repository.GetForUpdate(ctx, placed.ID())
		suite.Require().NoError(err)

		suite.True(o.IsEqual(placed))
		suite.True(orderDate.Equal(o.OrderDate()))
		suite.Equal(order.Ordered, o.Status())
		suite.False(o.Member().IsLoaded())
		suite.True(o.Member().ID().IsEqual(suite.demo.Members[0].ID()))

		d, err := o.Delivery().Get()
		suite.Require().NoError(err)
		suite.Equal(order.Ready, d.Status())
		suite.Equal("Seoul", d.Address().City())

		items, err := o.OrderItems().Get()
		suite.Require().NoError(err)
		suite.Require().Len(items, 2)
		suite.Equal(10000, items[0].OrderPrice())
		suite.Equal(1, items[0].Count())
		suite.Equal(20000, items[1].OrderPrice())
		suite.Equal(2, items[1].Count())
		suite.False(items[0].Item().IsLoaded())

		total, err := o.TotalPrice()
		suite.Require().NoError(err)
		suite.Equal(50000, total)
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	suite.inTx(func(repository *orderrepo.GormOrderRepository) {
		_, err := repository.GetForUpdate(suite.T().Context(), kernel.NewUUID())
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndDelivery() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", suite.demo.Orders[1].ID(), mock.Anything).Once()

	suite.inTx(func(repository *orderrepo.GormOrderRepository) {
		o, err := repository.GetForUpdate(ctx, suite.demo.Orders[1].ID())
		suite.Require().NoError(err)
		d, err := o.Delivery().Get()
		suite.Require().NoError(err)
		suite.Require().NoError(d.Complete())

		suite.Require().NoError(repository.Update(ctx, o))
	})

	d, err := suite.repository.GetDelivery(ctx, suite.demo.Orders[1].Delivery().ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, d.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAll_Search() {
	ctx := suite.T().Context()
	canceled := order.Canceled

	testCases := []struct {
		name    string
		search  func() ports.OrderSearch
		limit   int
		members []string
	}{
		{"no filter", func() ports.OrderSearch { return ports.OrderSearch{} }, 1000, []string{"userA", "userB"}},
		{"limit", func() ports.OrderSearch { return ports.OrderSearch{} }, 1, []string{"userA"}},
		{"member name", func() ports.OrderSearch { return ports.OrderSearch{MemberName: "B"} }, 1000, []string{"userB"}},
		{"wildcard is literal", func() ports.OrderSearch { return ports.OrderSearch{MemberName: "user%"} }, 1000, nil},
		{"status", func() ports.OrderSearch {
			s, err := ports.NewOrderSearch("", &canceled)
			suite.Require().NoError(err)
			return s
		}, 1000, nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			orders, err := suite.repository.FindAll(ctx, tc.search(), tc.limit)
			suite.Require().NoError(err)
			suite.Require().Len(orders, len(tc.members))

			for i, o := range orders {
				suite.False(o.Member().IsLoaded())
				suite.False(o.Delivery().IsLoaded())
				suite.False(o.OrderItems().IsLoaded())
				suite.True(o.Member().ID().IsEqual(suite.memberID(tc.members[i])))
			}
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAllWithItems_SingleStatement() {
	ctx, counter := querystats.WithCounter(suite.T().Context())

	orders, err := suite.repository.FindAllWithItems(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(1), counter.Count())
	suite.Require().Len(orders, 2)

	m, err := orders[1].Member().Get()
	suite.Require().NoError(err)
	suite.Equal("userB", m.Name())

	items, err := orders[1].OrderItems().Get()
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	it, err := items[0].Item().Get()
	suite.Require().NoError(err)
	suite.Equal("SPRING1 BOOK", it.Name())
	suite.Equal(97, it.StockQuantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAllWithItems_OrderWithoutItems() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.database.DB.Exec(
		"DELETE FROM order_items WHERE order_id = ?", suite.demo.Orders[0].ID().Bytes()).Error)

	orders, err := suite.repository.FindAllWithItems(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	items, err := orders[0].OrderItems().Get()
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAllWithMemberDelivery_Page() {
	ctx := suite.T().Context()

	testCases := []struct {
		name   string
		page   *ports.Page
		member string
		count  int
	}{
		{"first page", &ports.Page{Offset: 0, Limit: 1}, "userA", 1},
		{"second page", &ports.Page{Offset: 1, Limit: 1}, "userB", 1},
		{"no page", nil, "userA", 2},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			counted, counter := querystats.WithCounter(ctx)

			orders, err := suite.repository.FindAllWithMemberDelivery(counted, tc.page)

			suite.Require().NoError(err)
			suite.Equal(int64(1), counter.Count())
			suite.Require().Len(orders, tc.count)
			m, err := orders[0].Member().Get()
			suite.Require().NoError(err)
			suite.Equal(tc.member, m.Name())
			suite.True(orders[0].Delivery().IsLoaded())
			suite.False(orders[0].OrderItems().IsLoaded())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindOrderItemsWithItem() {
	ctx, counter := querystats.WithCounter(suite.T().Context())
	ids := []kernel.UUID{suite.demo.Orders[0].ID(), suite.demo.Orders[1].ID(), kernel.NewUUID()}

	byOrder, err := suite.repository.FindOrderItemsWithItem(ctx, ids)

	suite.Require().NoError(err)
	suite.Equal(int64(1), counter.Count())
	suite.Len(byOrder, 2)
	suite.Require().Len(byOrder[ids[0]], 2)
	it, err := byOrder[ids[0]][1].Item().Get()
	suite.Require().NoError(err)
	suite.Equal("JPA2 BOOK", it.Name())

	empty, err := suite.repository.FindOrderItemsWithItem(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
	suite.Equal(int64(1), counter.Count())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOrderItems_UnloadedItems() {
	items, err := suite.repository.GetOrderItems(suite.T().Context(), suite.demo.Orders[1].ID())

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.False(items[0].Item().IsLoaded())
	suite.True(items[0].Item().ID().IsEqual(suite.demo.Items[2].ID()))
	suite.Equal(3, items[0].Count())
	suite.Equal(4, items[1].Count())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDelivery_NotFound() {
	_, err := suite.repository.GetDelivery(suite.T().Context(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) memberID(name string) kernel.UUID {
	for _, m := range suite.demo.Members {
		if m.Name() == name {
			return m.ID()
		}
	}
	suite.FailNow("unknown member " + name)
	return kernel.UUID{}
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
