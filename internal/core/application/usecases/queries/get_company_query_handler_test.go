package queries_test

import (
	"context"
	"testing"

	"ordertrack/internal/adapters/out/postgres/pgtest"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetCompanyQueryHandlerTestSuite struct {
	suite.Suite
	database *pgtest.Database
	handler  queries.GetCompanyQueryHandler
}

func (suite *GetCompanyQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.handler = queries.NewGetCompanyQueryHandler(database.DB)
}

func (suite *GetCompanyQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *GetCompanyQueryHandlerTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *GetCompanyQueryHandlerTestSuite) TestHandle_ReturnsOwnersCompany() {
	seed := seeder{db: suite.database.DB, r: suite.Require()}
	ownerID := kernel.NewUUID()
	c := seed.company(ownerID, "acme", "Design\n\n  Cutting  \nSewing")
	seed.company(kernel.NewUUID(), "globex", "Other")

	query, err := queries.NewGetCompanyQuery(ownerID)
	suite.Require().NoError(err)
	loaded, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(c.ID(), loaded.ID())
	suite.Equal("acme", loaded.Name())
	suite.Equal([]string{"Design", "Cutting", "Sewing"}, loaded.ProcessSteps().Names())
}

func (suite *GetCompanyQueryHandlerTestSuite) TestHandle_NotRegistered() {
	query, err := queries.NewGetCompanyQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetCompanyQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCompanyQueryHandlerTestSuite))
}
