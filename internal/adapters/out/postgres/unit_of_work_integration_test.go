package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "cafedelivery/internal/adapters/out/postgres"
	"cafedelivery/internal/adapters/out/postgres/cartrepo"
	"cafedelivery/internal/adapters/out/postgres/courierrepo"
	"cafedelivery/internal/adapters/out/postgres/orderrepo"
	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/courier"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"
	"cafedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across
// repositories: checkout atomicity, rollback, and the serializable loser
// path when two writers race for the same order.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&cartrepo.CartDTO{},
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts, orders, couriers").Error)
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_CheckoutShape_AtomicallyPersistsOrderAndClearsCart() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ownerCart := suite.createTestCart("customer-7", now)
	suite.saveCart(ownerCart)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.createTestOrder(ownerCart, now)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CartRepository().Delete(ctx, ownerCart.OwnerID()))
	suite.Require().NoError(uow.Commit(ctx))

	// The order landed and the cart row is gone.
	readBack := suite.factory.Create()
	restored, err := readBack.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())

	_, err = readBack.CartRepository().Get(ctx, ownerCart.OwnerID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ownerCart := suite.createTestCart("customer-7", now)
	suite.saveCart(ownerCart)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.createTestOrder(ownerCart, now)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CartRepository().Delete(ctx, ownerCart.OwnerID()))
	suite.Require().NoError(uow.Rollback(ctx))

	// Nothing happened: the cart is still there and the order never landed.
	readBack := suite.factory.Create()
	_, err := readBack.CartRepository().Get(ctx, ownerCart.OwnerID())
	suite.Require().NoError(err)

	_, err = readBack.OrderRepository().Get(ctx, aggregate.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsInvalidTransaction() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAcceptRace_SecondWriterLosesWithConflict() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	// One order waiting for a courier, two couriers racing for it.
	aggregate := suite.createTestOrder(suite.createTestCart("customer-7", now), now)
	suite.Require().NoError(aggregate.Confirm(order.RoleAdmin))
	suite.Require().NoError(aggregate.StartPreparation(order.RoleAdmin))
	suite.Require().NoError(aggregate.ReadyForCourier(order.RoleAdmin))

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(seed.Commit(ctx))

	winner := suite.createTestCourier("Ana")
	loser := suite.createTestCourier("Bruno")

	uowA := suite.factory.Create()
	suite.Require().NoError(uowA.Begin(ctx))
	orderA, err := uowA.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	uowB := suite.factory.Create()
	suite.Require().NoError(uowB.Begin(ctx))
	orderB, err := uowB.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	// First courier accepts and commits.
	suite.Require().NoError(orderA.AcceptDelivery(winner, now))
	suite.Require().NoError(uowA.OrderRepository().Update(ctx, orderA))
	suite.Require().NoError(uowA.Commit(ctx))

	// Second courier read the same snapshot; its write must lose.
	suite.Require().NoError(orderB.AcceptDelivery(loser, now))
	err = uowB.OrderRepository().Update(ctx, orderB)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrTransactionConflict)
	suite.Require().NoError(uowB.Rollback(ctx))

	// The winner's binding survived.
	readBack := suite.factory.Create()
	restored, err := readBack.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.EnRoute, restored.Status())
	suite.Require().NotNil(restored.CourierID())
	suite.True(winner.ID().IsEqual(*restored.CourierID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) saveCart(ownerCart *cart.Cart) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Save(ctx, ownerCart))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCart(ownerID string, now time.Time) *cart.Cart {
	price, err := kernel.NewMoneyFromCents(450)
	suite.Require().NoError(err)

	item, err := cart.NewItem(kernel.NewUUID(), "Latte", price, 2, "Grande", "img/latte")
	suite.Require().NoError(err)

	ownerCart, err := cart.NewCart(ownerID, now)
	suite.Require().NoError(err)
	suite.Require().NoError(ownerCart.AddItem(item, now))
	return ownerCart
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(ownerCart *cart.Cart, now time.Time) *order.Order {
	address, err := kernel.NewAddress("Av. Siempre Viva 742", "Springfield", "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		ownerCart.OwnerID(),
		ownerCart.Items(),
		address,
		order.PaymentCard,
		"",
		now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCourier(name string) *courier.Courier {
	rider, err := courier.NewCourier(kernel.NewUUID(), name, "555-0101", "img/"+name, 4.5)
	suite.Require().NoError(err)
	rider.SetAvailability(true)
	return rider
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
