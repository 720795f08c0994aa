package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transactions spanning several repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.DishRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.VerificationRepository())
	suite.NotNil(uow1.PaymentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin keeps the transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitIsHarmless() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	r := suite.newRestaurant()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))
	_ = uow.Rollback(ctx)

	_, err := suite.factory.Create().RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryCommit() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	r := suite.newRestaurant()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	dish, err := restaurant.NewDish(r.ID(), "Margherita", kernel.MustNewPrice(10), "", "Tomato and mozzarella", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DishRepository().Add(ctx, dish))

	o := suite.newOrder(r, dish)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	// Reads inside the transaction see uncommitted rows.
	inside, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(r.OwnerID(), inside.RestaurantOwnerID())

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	menu, err := fresh.DishRepository().FindByRestaurant(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Len(menu, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEverything() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	u, err := user.NewUser("client@example.com", "secret-password", user.Client)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	v, err := user.NewVerification(u.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.VerificationRepository().Add(ctx, v))

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.UserRepository().Get(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.VerificationRepository().GetByCode(ctx, v.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChangesAreIsolated() {
	ctx := suite.T().Context()
	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))

	r := suite.newRestaurant()
	suite.Require().NoError(writer.RestaurantRepository().Add(ctx, r))

	_, err := suite.factory.Create().RestaurantRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(writer.Commit(ctx))
	_, err = suite.factory.Create().RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTracksWrittenAggregates() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	r := suite.newRestaurant()
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	r.Promote(time.Now())
	suite.Require().NoError(uow.RestaurantRepository().Update(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal([]kernel.ID{r.ID(), r.ID()}, gormUoW.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) newRestaurant() *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant("Pizza Place", "Main street 1", "", kernel.MustNewID(2), nil)
	suite.Require().NoError(err)
	return r
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(r *restaurant.Restaurant, dish *restaurant.Dish) *order.Order {
	item, err := order.NewItem(dish.ID(), nil)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.MustNewID(1), r.ID(), r.OwnerID(), []order.Item{item}, dish.Price())
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
