package queries

import (
	"errors"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrCheckJobStartQueryIsNotConstructed = errors.New(
		"CheckJobStartQuery must be created via NewCheckJobStartQuery constructor",
	)
)

// CheckJobStartQuery asks whether service of a stored job may begin at a
// given instant, expressed in user seconds.
//
// Example:
//
//	query, _ := NewCheckJobStartQuery(problemID, 42, 3600)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Valid)
type CheckJobStartQuery struct {
	problemID kernel.UUID
	jobID     uint64
	at        kernel.UserDuration

	guard guard.ConstructorGuard
}

func NewCheckJobStartQuery(problemID kernel.UUID, jobID uint64, at kernel.UserDuration) (CheckJobStartQuery, error) {
	if err := problemID.Validate(); err != nil {
		return CheckJobStartQuery{}, err
	}

	return CheckJobStartQuery{
		problemID: problemID,
		jobID:     jobID,
		at:        at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q CheckJobStartQuery) Validate() error {
	return q.guard.Validate(ErrCheckJobStartQueryIsNotConstructed)
}

func (q CheckJobStartQuery) ProblemID() kernel.UUID {
	return q.problemID
}

func (q CheckJobStartQuery) JobID() uint64 {
	return q.jobID
}

// At returns the candidate start in user seconds.
func (q CheckJobStartQuery) At() kernel.UserDuration {
	return q.at
}

// CheckJobStartQueryResponse carries the answer together with the instant
// actually tested, in internal units.
type CheckJobStartQueryResponse struct {
	Valid    bool
	Internal kernel.Duration
}
