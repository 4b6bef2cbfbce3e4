package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeHandler deletes problems older than the command's cutoff.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredProblemsCommand) (int64, error)
}

// ProblemRetentionJob periodically deletes problems older than the retention
// period, together with their jobs.
type ProblemRetentionJob struct {
	handler   PurgeHandler
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewProblemRetentionJob creates a retention job. schedule is a cron
// expression with a leading seconds field.
func NewProblemRetentionJob(
	handler PurgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ProblemRetentionJob {
	return &ProblemRetentionJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "problem_retention_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *ProblemRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Problem retention job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *ProblemRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Problem retention job stopped")
}

func (j *ProblemRetentionJob) run(ctx context.Context) {
	cmd, err := commands.NewPurgeExpiredProblemsCommand(j.now(), j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Problem retention job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Problem retention job failed", "error", err)
		return
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired problems deleted", "count", deleted, "cutoff", cmd.Cutoff())
	}
}
