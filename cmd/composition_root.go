package cmd

import (
	"context"
	"log/slog"

	"github.com/KimJinHyeon0/vroom/internal/adapters/out/postgres"
	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/queries"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	jobFactory job.Factory
	logger     *slog.Logger
}

// NewCompositionRoot wires adapters to use cases. It fails when the duration
// factor or priority bound in configs is invalid.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	jobFactory, err := newJobFactory(configs)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		jobFactory: jobFactory,
		logger:     logger,
	}, nil
}

func newJobFactory(configs Config) (job.Factory, error) {
	scale := kernel.DefaultDurationScale()
	if configs.DurationFactor != 0 {
		s, err := kernel.NewDurationScale(configs.DurationFactor)
		if err != nil {
			return job.Factory{}, err
		}
		scale = s
	}

	priorities := kernel.DefaultPriorityRange()
	if configs.MaxPriority != 0 {
		p, err := kernel.NewPriorityRange(0, kernel.Priority(configs.MaxPriority))
		if err != nil {
			return job.Factory{}, err
		}
		priorities = p
	}

	return job.NewFactory(scale, priorities)
}

func (c *CompositionRoot) problemUoWFactory() commands.ProblemUoWFactory {
	return FuncProblemUoWFactory(func() commands.ProblemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProblemCommandHandler() *commands.CreateProblemCommandHandler {
	h := commands.NewCreateProblemCommandHandler(c.problemUoWFactory(), c.jobFactory)
	return &h
}

func (c *CompositionRoot) CreateAddJobCommandHandler() *commands.AddJobCommandHandler {
	h := commands.NewAddJobCommandHandler(c.problemUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePurgeExpiredProblemsCommandHandler() *commands.PurgeExpiredProblemsCommandHandler {
	h := commands.NewPurgeExpiredProblemsCommandHandler(c.problemUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateListProblemJobsQueryHandler() queries.ListProblemJobsQueryHandler {
	return queries.NewListProblemJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckJobStartQueryHandler() queries.CheckJobStartQueryHandler {
	return queries.NewCheckJobStartQueryHandler(c.problemReader())
}

func (c *CompositionRoot) CreateGetProblemQueryHandler() queries.GetProblemQueryHandler {
	return queries.NewGetProblemQueryHandler(c.problemReader())
}

// problemReader loads problems outside any transaction, so reads take no lock.
func (c *CompositionRoot) problemReader() queries.ProblemReader {
	return FuncProblemReader(func(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
		return c.uowFactory.Create().ProblemRepository().Get(ctx, id)
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredProblemsCommandHandler(),
		jobs.RetentionConfig{
			Schedule: c.configs.RetentionSchedule,
			Period:   c.configs.RetentionPeriod,
		},
		c.logger,
	)
}

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW {
	return f()
}

type FuncProblemReader func(ctx context.Context, id kernel.UUID) (*problem.Problem, error)

func (f FuncProblemReader) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	return f(ctx, id)
}
