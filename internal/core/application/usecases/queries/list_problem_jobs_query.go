// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models in user units; they never modify state.
package queries

import (
	"errors"
	"math"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrListProblemJobsQueryIsNotConstructed = errors.New(
		"ListProblemJobsQuery must be created via NewListProblemJobsQuery constructor",
	)
)

// ListProblemJobsQuery retrieves every job of a problem in insertion order.
//
// Example:
//
//	query, err := NewListProblemJobsQuery(problemID)
//	if err != nil {
//	    return err
//	}
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list jobs: %w", err)
//	}
//	for _, j := range jobs {
//	    fmt.Printf("job %d (%s) at %s\n", j.ID, j.Type, j.Location)
//	}
type ListProblemJobsQuery struct {
	problemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProblemJobsQuery(problemID kernel.UUID) (ListProblemJobsQuery, error) {
	if err := problemID.Validate(); err != nil {
		return ListProblemJobsQuery{}, err
	}

	return ListProblemJobsQuery{
		problemID: problemID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListProblemJobsQuery) Validate() error {
	return q.guard.Validate(ErrListProblemJobsQueryIsNotConstructed)
}

func (q ListProblemJobsQuery) ProblemID() kernel.UUID {
	return q.problemID
}

// TimeWindowView is a time window in user seconds.
type TimeWindowView struct {
	Start kernel.UserDuration
	End   kernel.UserDuration
}

// ListProblemJobsQueryResponse is the read model of a stored job.
// Durations are converted back to user seconds with the problem's scale.
type ListProblemJobsQueryResponse struct {
	ID          uint64
	Type        string
	Location    kernel.Location
	Setup       kernel.UserDuration
	Service     kernel.UserDuration
	Delivery    kernel.Amount
	Pickup      kernel.Amount
	Skills      []kernel.Skill
	Priority    kernel.Priority
	TimeWindows []TimeWindowView
	Description string
}

// toUser converts an internal duration, saturating at the largest user value
// so the default window stays representable.
func toUser(scale kernel.DurationScale, d kernel.Duration) kernel.UserDuration {
	if int64(d)/scale.Factor() > math.MaxUint32 {
		return math.MaxUint32
	}
	return scale.ToUser(d)
}
