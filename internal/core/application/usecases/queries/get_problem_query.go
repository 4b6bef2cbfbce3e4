package queries

import (
	"errors"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrGetProblemQueryIsNotConstructed = errors.New(
		"GetProblemQuery must be created via NewGetProblemQuery constructor",
	)
)

// GetProblemQuery retrieves the summary of one problem.
type GetProblemQuery struct {
	problemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProblemQuery(problemID kernel.UUID) (GetProblemQuery, error) {
	if err := problemID.Validate(); err != nil {
		return GetProblemQuery{}, err
	}

	return GetProblemQuery{
		problemID: problemID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProblemQuery) Validate() error {
	return q.guard.Validate(ErrGetProblemQueryIsNotConstructed)
}

func (q GetProblemQuery) ProblemID() kernel.UUID {
	return q.problemID
}

// GetProblemQueryResponse summarizes a problem. Unconstrained jobs are those
// whose only window is the default one.
type GetProblemQueryResponse struct {
	ID                kernel.UUID
	AmountSize        int
	DurationFactor    int64
	MaxPriority       kernel.Priority
	JobCount          int
	UnconstrainedJobs int
	TotalDelivery     kernel.Amount
	TotalPickup       kernel.Amount
	CreatedAt         time.Time
}
