package queries

import (
	"context"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
)

// ProblemReader loads problem aggregates. ports.ProblemRepository satisfies it.
type ProblemReader interface {
	Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error)
}

// CheckJobStartQueryHandler answers feasibility questions from the domain
// Job itself, so the window rules are the ones enforced at construction.
type CheckJobStartQueryHandler struct {
	reader ProblemReader
}

func NewCheckJobStartQueryHandler(reader ProblemReader) CheckJobStartQueryHandler {
	return CheckJobStartQueryHandler{reader: reader}
}

// Handle converts the instant with the problem's scale and calls IsValidStart.
func (h CheckJobStartQueryHandler) Handle(
	ctx context.Context,
	query CheckJobStartQuery,
) (CheckJobStartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckJobStartQueryResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.ProblemID())
	if err != nil {
		return CheckJobStartQueryResponse{}, err
	}

	j, err := aggregate.Job(query.JobID())
	if err != nil {
		return CheckJobStartQueryResponse{}, err
	}

	t := aggregate.Factory().Scale().ToInternal(query.At())
	return CheckJobStartQueryResponse{
		Valid:    j.IsValidStart(t),
		Internal: t,
	}, nil
}
