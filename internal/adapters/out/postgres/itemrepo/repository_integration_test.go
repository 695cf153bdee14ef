package itemrepo_test

import (
	"context"
	"testing"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/pgtest"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *itemrepo.GormItemRepository
	tracker    *MockAggregateTracker
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = itemrepo.NewGormItemRepository(suite.database.DB, suite.tracker)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAdd_Get_EveryKind() {
	ctx := suite.T().Context()

	testCases := []struct {
		name    string
		details item.Details
	}{
		{"book", item.Book{Author: "kim", ISBN: "1111"}},
		{"album", item.Album{Artist: "IU", Etc: "live"}},
		{"movie", item.Movie{Director: "Bong", Actor: "Song"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			it, err := item.NewItem(kernel.NewUUID(), tc.name, 1000, 10, tc.details)
			suite.Require().NoError(err)

			suite.Require().NoError(suite.repository.Add(ctx, it))

			got, err := suite.repository.Get(ctx, it.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.details, got.Details())
			suite.Equal(tc.details.Kind(), got.Kind())
			suite.Equal(1000, got.Price())
			suite.Equal(10, got.StockQuantity())
		})
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_Stock() {
	ctx := suite.T().Context()
	it, err := item.NewItem(kernel.NewUUID(), "JPA1 BOOK", 10000, 10, item.Book{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, it))

	tx := suite.database.DB.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()
	txRepository := itemrepo.NewGormItemRepository(tx, suite.tracker)

	locked, err := txRepository.GetForUpdate(ctx, it.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.RemoveStock(3))
	suite.Require().NoError(txRepository.Update(ctx, locked))
	suite.Require().NoError(tx.Commit().Error)

	got, err := suite.repository.Get(ctx, it.ID())
	suite.Require().NoError(err)
	suite.Equal(7, got.StockQuantity())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(suite.T().Context(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestFindAll_OrderedByName() {
	ctx := suite.T().Context()
	for _, name := range []string{"SPRING1 BOOK", "JPA1 BOOK"} {
		it, err := item.NewItem(kernel.NewUUID(), name, 1, 1, item.Book{})
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, it))
	}

	items, err := suite.repository.FindAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("JPA1 BOOK", items[0].Name())
	suite.Equal("SPRING1 BOOK", items[1].Name())
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
