package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ArchiveQueriesTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *ArchiveQueriesTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *ArchiveQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ArchiveQueriesTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

type archivedLine struct {
	name string
	qty  int
}

// archive stores a finished order; delivered=false stores it cancelled.
func (suite *ArchiveQueriesTestSuite) archive(id, customerID int64, at time.Time, delivered bool, lines ...archivedLine) {
	orderLines := make([]order.Line, 0, len(lines))
	for i, l := range lines {
		line, err := order.NewLine(i+1, l.name, l.qty, kernel.MustMoney("2.00"))
		suite.Require().NoError(err)
		orderLines = append(orderLines, line)
	}

	o, err := order.NewOrder(id, customerID, orderLines, at)
	suite.Require().NoError(err)
	if delivered {
		suite.Require().NoError(o.StartPreparing("c1"))
		suite.Require().NoError(o.MarkReady("c1"))
		suite.Require().NoError(o.DispatchForDelivery("d1"))
		suite.Require().NoError(o.MarkDelivered("d1"))
	} else {
		suite.Require().NoError(o.Cancel())
	}

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
}

func (suite *ArchiveQueriesTestSuite) TestOrderHistory_NewestFirstWithItemCounts() {
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	suite.archive(1, 7, base, true, archivedLine{"Chips", 2}, archivedLine{"Mash", 1})
	suite.archive(2, 7, base.Add(time.Hour), false, archivedLine{"Chips", 1})
	suite.archive(3, 8, base, true, archivedLine{"Chips", 5})

	query, err := queries.NewGetOrderHistoryQuery(7, 0)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(int64(2), history[0].ID)
	suite.Equal(order.Cancelled.String(), history[0].Status)
	suite.Empty(history[0].CourierID)
	suite.Equal(int64(1), history[1].ID)
	suite.Equal(order.Delivered.String(), history[1].Status)
	suite.Equal(3, history[1].ItemCount)
	suite.Equal("d1", history[1].CourierID)
	suite.True(history[1].Total.IsEqual(kernel.MustMoney("6.00")))
}

func (suite *ArchiveQueriesTestSuite) TestOrderHistory_RespectsLimit() {
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 3; i++ {
		suite.archive(i, 7, base.Add(time.Duration(i)*time.Minute), true, archivedLine{"Chips", 1})
	}

	query, err := queries.NewGetOrderHistoryQuery(7, 2)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(int64(3), history[0].ID)
}

func (suite *ArchiveQueriesTestSuite) TestPopularItems_CountsDeliveredOnly() {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	suite.archive(1, 1, at, true, archivedLine{"Chips", 2}, archivedLine{"Mash", 3})
	suite.archive(2, 2, at, true, archivedLine{"Chips", 2}, archivedLine{"Wedges", 1})
	suite.archive(3, 3, at, false, archivedLine{"Wedges", 9})

	query, err := queries.NewGetPopularItemsQuery(2)
	suite.Require().NoError(err)

	items, err := queries.NewGetPopularItemsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]queries.GetPopularItemsQueryResponse{
		{ItemName: "Chips", Quantity: 4, Orders: 2},
		{ItemName: "Mash", Quantity: 3, Orders: 1},
	}, items)
}

func TestArchiveQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ArchiveQueriesTestSuite))
}
