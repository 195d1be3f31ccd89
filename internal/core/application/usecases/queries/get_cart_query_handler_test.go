package queries_test

import (
	"context"
	"testing"
	"time"

	"cafedelivery/internal/adapters/out/postgres/cartrepo"
	"cafedelivery/internal/core/application/usecases/queries"
	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracking without
// recording anything; the read-side tests only need seeded rows.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

// GetCartQueryHandlerIntegrationTestSuite verifies the cart snapshot query
// against a real PostgreSQL instance.
type GetCartQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartQueryHandler
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartDTO{}))
	suite.handler = queries.NewGetCartQueryHandler(db)
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts").Error)
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) TestHandle_ExistingCart_ReturnsSnapshot() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ownerCart := suite.seedCart("customer-7", now)

	query, err := queries.NewGetCartQuery("customer-7")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("customer-7", response.OwnerID)
	suite.Equal(ownerCart.Subtotal().Cents(), response.SubtotalCents)
	suite.Equal(ownerCart.Total().Cents(), response.TotalCents)
	suite.WithinDuration(now, response.UpdatedAt, time.Millisecond)

	suite.Require().Len(response.Items, 2)
	suite.Equal("Latte", response.Items[0].Name)
	suite.Equal(int64(450), response.Items[0].UnitPriceCents)
	suite.Equal(2, response.Items[0].Quantity)
	suite.Equal("Grande", response.Items[0].SizeVariant)
	suite.Equal(ownerCart.Items()[0].ID().String(), response.Items[0].LineID)
	suite.Equal(ownerCart.Items()[0].ProductID().String(), response.Items[0].ProductID)
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) TestHandle_MissingCart_ReturnsEmptySnapshot() {
	query, err := queries.NewGetCartQuery("nobody")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("nobody", response.OwnerID)
	suite.Empty(response.Items)
	suite.Zero(response.SubtotalCents)
	suite.Zero(response.TotalCents)
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) TestHandle_ZeroValueQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetCartQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetCartQueryIsNotConstructed)
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) seedCart(ownerID string, now time.Time) *cart.Cart {
	ownerCart, err := cart.NewCart(ownerID, now)
	suite.Require().NoError(err)

	latte := suite.newItem("Latte", 450, 2, "Grande")
	croissant := suite.newItem("Croissant", 300, 1, "")
	suite.Require().NoError(ownerCart.AddItem(latte, now))
	suite.Require().NoError(ownerCart.AddItem(croissant, now))

	repository := cartrepo.NewGormCartRepository(suite.db, noopTracker{})
	suite.Require().NoError(repository.Save(context.Background(), ownerCart))
	return ownerCart
}

func (suite *GetCartQueryHandlerIntegrationTestSuite) newItem(
	name string, cents int64, quantity int, sizeVariant string,
) *cart.Item {
	price, err := kernel.NewMoneyFromCents(cents)
	suite.Require().NoError(err)

	item, err := cart.NewItem(kernel.NewUUID(), name, price, quantity, sizeVariant, "img/"+name)
	suite.Require().NoError(err)
	return item
}

func TestGetCartQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerIntegrationTestSuite))
}
