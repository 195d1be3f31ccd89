package queries_test

import (
	"context"
	"testing"
	"time"

	"cafedelivery/internal/adapters/out/postgres/orderrepo"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandlerIntegrationTestSuite verifies the per-status
// order counters against a real PostgreSQL instance.
type GetOrderStatsQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetOrderStatsQueryHandler
	repository *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.repository = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) TestHandle_CountsEveryStatus() {
	ctx := context.Background()

	suite.seedOrderInStatus(order.Pending)
	suite.seedOrderInStatus(order.Pending)
	suite.seedOrderInStatus(order.Confirmed)
	suite.seedOrderInStatus(order.Cancelled)

	response, err := suite.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(2, response.CountFor(order.Pending))
	suite.Equal(1, response.CountFor(order.Confirmed))
	suite.Equal(0, response.CountFor(order.InPreparation))
	suite.Equal(0, response.CountFor(order.AwaitingCourier))
	suite.Equal(0, response.CountFor(order.EnRoute))
	suite.Equal(0, response.CountFor(order.Delivered))
	suite.Equal(1, response.CountFor(order.Cancelled))
	suite.Equal(4, response.Total)
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) TestHandle_NoOrders_AllZero() {
	response, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Zero(response.Total)
	for status := order.Pending; status <= order.Cancelled; status++ {
		suite.Zero(response.CountFor(status))
	}
}

func (suite *GetOrderStatsQueryHandlerIntegrationTestSuite) seedOrderInStatus(status order.Status) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	price, err := kernel.NewMoneyFromCents(450)
	suite.Require().NoError(err)

	item, err := cart.NewItem(kernel.NewUUID(), "Latte", price, 1, "", "")
	suite.Require().NoError(err)

	address, err := kernel.NewAddress("Av. Siempre Viva 742", "Springfield", "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "customer-7", []*cart.Item{item}, address, order.PaymentCash, "", now,
	)
	suite.Require().NoError(err)

	switch status {
	case order.Confirmed:
		suite.Require().NoError(aggregate.Confirm(order.RoleAdmin))
	case order.Cancelled:
		suite.Require().NoError(aggregate.Cancel(order.RoleAdmin))
	default:
	}

	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
}

func TestGetOrderStatsQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerIntegrationTestSuite))
}
