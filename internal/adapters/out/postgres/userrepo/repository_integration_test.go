package userrepo_test

import (
	"context"
	"testing"

	"eats/internal/adapters/out/postgres/pgtest"
	"eats/internal/adapters/out/postgres/userrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	database      *pgtest.Database
	tracker       *MockAggregateTracker
	users         *userrepo.GormUserRepository
	verifications *userrepo.GormVerificationRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.users = userrepo.NewGormUserRepository(suite.database.DB, suite.tracker)
	suite.verifications = userrepo.NewGormVerificationRepository(suite.database.DB)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := suite.T().Context()
	u := suite.addUser("owner@example.com", user.Owner)

	byID, err := suite.users.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("owner@example.com", byID.Email())
	suite.Equal(user.Owner, byID.Role())
	suite.False(byID.Verified())
	suite.True(byID.CheckPassword("secret-password"))

	byEmail, err := suite.users.GetByEmail(ctx, "owner@example.com")
	suite.Require().NoError(err)
	suite.Equal(u.ID(), byEmail.ID())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmailIsConflict() {
	suite.addUser("taken@example.com", user.Client)

	dup, err := user.NewUser("taken@example.com", "another-password", user.Delivery)
	suite.Require().NoError(err)
	err = suite.users.Add(suite.T().Context(), dup)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.True(dup.ID().IsZero())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := suite.T().Context()

	_, err := suite.users.Get(ctx, kernel.MustNewID(42))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.users.GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsVerification() {
	ctx := suite.T().Context()
	u := suite.addUser("client@example.com", user.Client)

	u.Verify()
	suite.Require().NoError(suite.users.Update(ctx, u))

	got, err := suite.users.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(got.Verified())
}

func (suite *UserRepositoryIntegrationTestSuite) TestVerification_Lifecycle() {
	ctx := suite.T().Context()
	u := suite.addUser("client@example.com", user.Client)

	v, err := user.NewVerification(u.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.verifications.Add(ctx, v))
	suite.False(v.ID().IsZero())

	got, err := suite.verifications.GetByCode(ctx, v.Code())
	suite.Require().NoError(err)
	suite.Equal(v.ID(), got.ID())
	suite.Equal(u.ID(), got.UserID())

	suite.Require().NoError(suite.verifications.Delete(ctx, v.ID()))
	_, err = suite.verifications.GetByCode(ctx, v.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestVerification_ReissueReplacesCode() {
	ctx := suite.T().Context()
	u := suite.addUser("client@example.com", user.Client)

	first, err := user.NewVerification(u.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.verifications.Add(ctx, first))
	second, err := user.NewVerification(u.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.verifications.Add(ctx, second))

	_, err = suite.verifications.GetByCode(ctx, first.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.verifications.GetByCode(ctx, second.Code())
	suite.Require().NoError(err)
}

func (suite *UserRepositoryIntegrationTestSuite) addUser(email string, role user.Role) *user.User {
	u, err := user.NewUser(email, "secret-password", role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(suite.T().Context(), u))
	suite.False(u.ID().IsZero())
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
