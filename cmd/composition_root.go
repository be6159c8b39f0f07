package cmd

import (
	"log/slog"

	"github.com/belvip/logistic-application/internal/adapters/out/metrics"
	"github.com/belvip/logistic-application/internal/adapters/out/postgres"
	"github.com/belvip/logistic-application/internal/adapters/out/postgres/packagerepo"
	"github.com/belvip/logistic-application/internal/core/application/usecases/commands"
	"github.com/belvip/logistic-application/internal/core/application/usecases/queries"
	"github.com/belvip/logistic-application/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Recorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, recorder *metrics.Recorder, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    recorder,
	}
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() *commands.CreatePackageCommandHandler {
	h := commands.NewCreatePackageCommandHandler(c.packageUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() *commands.UpdatePackageCommandHandler {
	h := commands.NewUpdatePackageCommandHandler(c.packageUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(packagerepo.NewGormPackageRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(packagerepo.NewGormPackageRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetPackageStatusCountsQueryHandler() queries.GetPackageStatusCountsQueryHandler {
	return queries.NewGetPackageStatusCountsQueryHandler(packagerepo.NewGormPackageRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statusMetricsJob := jobs.NewStatusMetricsJob(
		c.CreateGetPackageStatusCountsQueryHandler(),
		c.metrics,
		c.config.StatusMetricsSchedule,
		c.logger,
	)
	return jobs.NewJobManager(statusMetricsJob)
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}
