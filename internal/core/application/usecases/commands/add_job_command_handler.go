package commands

import (
	"context"
)

// AddJobCommandHandler loads a problem, builds the job with the problem's own
// factory and persists the grown aggregate.
type AddJobCommandHandler struct {
	uowFactory ProblemUoWFactory
}

func NewAddJobCommandHandler(uowFactory ProblemUoWFactory) AddJobCommandHandler {
	return AddJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command within a transaction. Duplicate identifiers
// and mismatched amount sizes are rejected by the aggregate.
func (h *AddJobCommandHandler) Handle(ctx context.Context, cmd AddJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	problemRepo := uow.ProblemRepository()
	aggregate, err := problemRepo.Get(ctx, cmd.ProblemID())
	if err != nil {
		return err
	}

	j, err := buildJob(aggregate.Factory(), cmd.Job())
	if err != nil {
		return err
	}

	if err = aggregate.AddJob(j); err != nil {
		return err
	}

	if err = problemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
