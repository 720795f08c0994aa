package queries_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type GetPaymentsQueryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	handler  queries.GetPaymentsQueryHandler
}

func (suite *GetPaymentsQueryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.handler = queries.NewGetPaymentsQueryHandler(database.DB)
}

func (suite *GetPaymentsQueryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *GetPaymentsQueryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *GetPaymentsQueryIntegrationTestSuite) TestReturnsOwnPaymentsNewestFirst() {
	ctx := suite.T().Context()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := paymentrepo.NewGormPaymentRepository(suite.database.DB)
	for _, p := range []struct {
		tx     string
		userID int64
		at     time.Time
	}{
		{"tx-a", 2, base},
		{"tx-b", 2, base.Add(time.Minute)},
		{"tx-c", 9, base.Add(time.Hour)},
	} {
		pay, err := payment.NewPayment(p.tx, kernel.MustNewID(p.userID), kernel.MustNewID(10), p.at)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, pay))
	}

	query, err := queries.NewGetPaymentsQuery(user.MustNewActor(kernel.MustNewID(2), user.Owner))
	suite.Require().NoError(err)

	got, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(got, 2)
	suite.Equal("tx-b", got[0].TransactionID)
	suite.Equal("tx-a", got[1].TransactionID)
	suite.Equal(kernel.MustNewID(10), got[0].RestaurantID)
	suite.True(base.Equal(got[1].CreatedAt))
}

func (suite *GetPaymentsQueryIntegrationTestSuite) TestNoPaymentsIsEmptyList() {
	query, err := queries.NewGetPaymentsQuery(user.MustNewActor(kernel.MustNewID(5), user.Owner))
	suite.Require().NoError(err)

	got, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *GetPaymentsQueryIntegrationTestSuite) TestUnconstructedQuery() {
	_, err := suite.handler.Handle(suite.T().Context(), queries.GetPaymentsQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetPaymentsQueryIsNotConstructed)
}

func TestGetPaymentsQueryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetPaymentsQueryIntegrationTestSuite))
}
