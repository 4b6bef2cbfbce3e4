package queries

import (
	"context"
)

// GetProblemQueryHandler summarizes a problem from its aggregate.
type GetProblemQueryHandler struct {
	reader ProblemReader
}

func NewGetProblemQueryHandler(reader ProblemReader) GetProblemQueryHandler {
	return GetProblemQueryHandler{reader: reader}
}

func (h GetProblemQueryHandler) Handle(ctx context.Context, query GetProblemQuery) (GetProblemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProblemQueryResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.ProblemID())
	if err != nil {
		return GetProblemQueryResponse{}, err
	}

	jobs := aggregate.Jobs()
	unconstrained := 0
	for _, j := range jobs {
		if tws := j.TimeWindows(); len(tws) == 1 && tws[0].IsDefault() {
			unconstrained++
		}
	}

	factory := aggregate.Factory()
	return GetProblemQueryResponse{
		ID:                aggregate.ID(),
		AmountSize:        aggregate.AmountSize(),
		DurationFactor:    factory.Scale().Factor(),
		MaxPriority:       factory.Priorities().Max(),
		JobCount:          len(jobs),
		UnconstrainedJobs: unconstrained,
		TotalDelivery:     aggregate.TotalDelivery(),
		TotalPickup:       aggregate.TotalPickup(),
		CreatedAt:         aggregate.CreatedAt(),
	}, nil
}
