package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	problemRetentionJob *ProblemRetentionJob
}

// RetentionConfig configures the problem retention sweep.
type RetentionConfig struct {
	Schedule string
	Period   time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler PurgeHandler,
	retention RetentionConfig,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		problemRetentionJob: NewProblemRetentionJob(purgeHandler, retention.Schedule, retention.Period, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.problemRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start problem retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.problemRetentionJob.Stop()
}
