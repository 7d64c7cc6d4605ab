package cmd

import (
	"context"
	"log/slog"
	"time"

	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tracker    services.ProgressTracker
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tracker:    services.NewProgressTracker(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterCompanyCommandHandler() commands.RegisterCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRegisterCompanyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f, c.tracker)
}

func (c *CompositionRoot) CreateInitializeProgressCommandHandler() commands.InitializeProgressCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewInitializeProgressCommandHandler(f, c.tracker)
}

func (c *CompositionRoot) CreateChangeStepStatusCommandHandler() commands.ChangeStepStatusCommandHandler {
	var f commands.ProgressUoWFactory = FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewChangeStepStatusCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateUpdateStepNotesCommandHandler() commands.UpdateStepNotesCommandHandler {
	var f commands.ProgressUoWFactory = FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewUpdateStepNotesCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCompanyQueryHandler() queries.GetCompanyQueryHandler {
	return queries.NewGetCompanyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersWithProgressQueryHandler() queries.ListOrdersWithProgressQueryHandler {
	return queries.NewListOrdersWithProgressQueryHandler(c.gormDB, c.tracker)
}

func (c *CompositionRoot) CreateGetOrderWithProgressQueryHandler() queries.GetOrderWithProgressQueryHandler {
	return queries.NewGetOrderWithProgressQueryHandler(c.gormDB, c.tracker)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(func(ctx context.Context) error {
		return postgres.Ping(ctx, c.gormDB)
	}, c.configs.HealthCheckSchedule, c.logger)
}

func (c *CompositionRoot) CreateServer(health httpadapter.HealthReporter) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterCompany:    c.CreateRegisterCompanyCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		InitializeProgress: c.CreateInitializeProgressCommandHandler(),
		ChangeStepStatus:   c.CreateChangeStepStatusCommandHandler(),
		UpdateStepNotes:    c.CreateUpdateStepNotesCommandHandler(),
		SetOrderStatus:     c.CreateSetOrderStatusCommandHandler(),
		GetCompany:         c.CreateGetCompanyQueryHandler(),
		ListOrders:         c.CreateListOrdersWithProgressQueryHandler(),
		GetOrderStats:      c.CreateGetOrderStatsQueryHandler(),
		TrackOrder:         c.CreateGetOrderWithProgressQueryHandler(),
	}, health)
}

func (c *CompositionRoot) CreateAuthenticator() *httpadapter.Authenticator {
	return httpadapter.NewAuthenticator([]byte(c.configs.AuthJWTSecret))
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProgressUoWFactory func() commands.ProgressUoW

func (f FuncProgressUoWFactory) Create() commands.ProgressUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
