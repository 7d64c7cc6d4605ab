package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/pgtest"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries of the
// GORM unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
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
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CompanyRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProgressRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin joins the active transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitKeepsData() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := newCompany(suite.T())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CompanyRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	_, err := suite.factory.Create().CompanyRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_OrderAndProgressTogether() {
	ctx := context.Background()
	c := newCompany(suite.T())
	suite.Require().NoError(suite.factory.Create().CompanyRepository().Add(ctx, c))

	uow := suite.factory.CreateGorm()
	o := newOrder(suite.T(), c.ID(), "PO-100")
	steps, err := services.NewProgressTracker().Plan(o, c)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ProgressRepository().AddAll(ctx, steps))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(1+len(steps), uow.TrackedCount())

	reader := suite.factory.Create()
	loaded, err := reader.OrderRepository().GetByNumber(ctx, "PO-100")
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
	stored, err := reader.ProgressRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(stored, len(steps))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEveryRepository() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := newCompany(suite.T())
	o := newOrder(suite.T(), c.ID(), "PO-200")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CompanyRepository().Add(ctx, c))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "writes are visible inside the transaction")
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.CompanyRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedWriteThenRollback() {
	ctx := context.Background()
	c := newCompany(suite.T())
	suite.Require().NoError(suite.factory.Create().CompanyRepository().Add(ctx, c))
	existing := newOrder(suite.T(), c.ID(), "PO-300")
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, existing))

	uow := suite.factory.Create()
	fresh := newOrder(suite.T(), c.ID(), "PO-301")
	duplicate := newOrder(suite.T(), c.ID(), "PO-300")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, fresh))
	err := uow.OrderRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, existing.ID())
	suite.Require().NoError(err)
	_, err = reader.OrderRepository().Get(ctx, fresh.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenInstances() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	c1 := newCompany(suite.T())
	c2 := newCompany(suite.T())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.CompanyRepository().Add(ctx, c1))
	suite.Require().NoError(uow2.CompanyRepository().Add(ctx, c2))

	_, err := uow1.CompanyRepository().Get(ctx, c2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = uow2.CompanyRepository().Get(ctx, c1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.CompanyRepository().Get(ctx, c1.ID())
	suite.Require().NoError(err)
	_, err = reader.CompanyRepository().Get(ctx, c2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionWritesImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := newCompany(suite.T())

	suite.Require().NoError(uow.CompanyRepository().Add(ctx, c))

	_, err := suite.factory.Create().CompanyRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStepWorkflowInsideTransaction() {
	ctx := context.Background()
	c := newCompany(suite.T())
	o := newOrder(suite.T(), c.ID(), "PO-400")
	steps, err := services.NewProgressTracker().Plan(o, c)
	suite.Require().NoError(err)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.CompanyRepository().Add(ctx, c))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.ProgressRepository().AddAll(ctx, steps))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	step, err := uow.ProgressRepository().GetForOwner(ctx, steps[0].ID(), c.OwnerID())
	suite.Require().NoError(err)
	suite.Require().NoError(step.Start(time.Now()))
	suite.Require().NoError(uow.ProgressRepository().UpdateStatus(ctx, step, progress.Pending))
	suite.Require().NoError(o.ChangeStatus(order.InProgress))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.ProgressRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	summary := services.NewProgressTracker().Summarize(stored)
	suite.Equal(services.StageInProduction, summary.Stage)
	suite.Equal(steps[0].Name(), summary.CurrentStep)
	loaded, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, loaded.Status())
}

func newCompany(t *testing.T) *company.Company {
	t.Helper()
	email, err := kernel.NewEmail("email", "owner@studio.test")
	if err != nil {
		t.Fatal(err)
	}
	steps, err := company.ParseProcessSteps("Cutting\nAssembly\nQuality check")
	if err != nil {
		t.Fatal(err)
	}
	c, err := company.NewCompany(kernel.NewUUID(), kernel.NewUUID(), "Studio", email, "", steps)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newOrder(t *testing.T, companyID kernel.UUID, number string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Sam Doe", "sam@example.test", "")
	if err != nil {
		t.Fatal(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), companyID, number, customer, "Oak table", nil)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
