package queries_test

import (
	"context"
	"testing"
	"time"

	"replenishment/internal/adapters/out/postgres/clientrepo"
	"replenishment/internal/core/application/usecases/queries"
	"replenishment/internal/core/domain/model/client"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetClientReplenishmentQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetClientReplenishmentQueryHandler
	clientRepo *clientrepo.GormClientRepository
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&clientrepo.ClientDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetClientReplenishmentQueryHandler(db)
	suite.clientRepo = clientrepo.NewGormClientRepository(db, &mockAggregateTracker{})
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE clients CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) TestHandle_NeverDeliveredClient() {
	ctx := context.Background()
	c, err := client.NewClient(kernel.NewUUID(), "Corner Shop", 60, 14)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.clientRepo.Add(ctx, c))

	query, err := queries.NewGetClientReplenishmentQuery(c.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(result.ClientID.IsEqual(c.ID()))
	suite.Equal("Corner Shop", result.Name)
	suite.Equal(60, result.StandardQuantity)
	suite.Equal(14, result.StandardPeriodicityDays)
	suite.Nil(result.LastEffectiveDeliveryDate)
	suite.Nil(result.NextDueDate)
	suite.True(result.Active)
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) TestHandle_ProjectsNextDueDate() {
	ctx := context.Background()
	c, err := client.NewClient(kernel.NewUUID(), "Corner Shop", 60, 14)
	suite.Require().NoError(err)

	deliveredAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	c.RecordDelivery(deliveredAt)
	suite.Require().NoError(suite.clientRepo.Add(ctx, c))

	query, err := queries.NewGetClientReplenishmentQuery(c.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.LastEffectiveDeliveryDate)
	suite.True(deliveredAt.Equal(*result.LastEffectiveDeliveryDate))
	suite.Require().NotNil(result.NextDueDate)
	suite.True(deliveredAt.AddDate(0, 0, 14).Equal(*result.NextDueDate))
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) TestHandle_ClientNotFound() {
	query, err := queries.NewGetClientReplenishmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetClientReplenishmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetClientReplenishmentQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
}

func TestGetClientReplenishmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetClientReplenishmentQueryHandlerTestSuite))
}
