// Package ports defines the persistence contracts of the job catalogue.
// The domain and application layers depend on these interfaces only, so
// adapters can be swapped and handlers tested with mocks.
package ports

import (
	"context"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for problem aggregates.
// A problem is always stored and loaded together with all of its jobs.
type ProblemRepository interface {
	// Add persists a new problem aggregate with its jobs.
	Add(ctx context.Context, aggregate *problem.Problem) error

	// Update persists jobs added to an existing problem.
	// Returns an ObjectNotFoundError when the problem does not exist.
	Update(ctx context.Context, aggregate *problem.Problem) error

	// Get loads a problem and rebuilds every job through job.RestoreJob, so
	// rows violating a job invariant surface as errors instead of jobs.
	Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error)

	// DeleteCreatedBefore removes problems created before cutoff together
	// with their jobs and returns the number of problems removed.
	//
	// Example:
	//   removed, err := repo.DeleteCreatedBefore(ctx, time.Now().Add(-24*time.Hour))
	//   if err != nil {
	//       return fmt.Errorf("failed to purge problems: %w", err)
	//   }
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
