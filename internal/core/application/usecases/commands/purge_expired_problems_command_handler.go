package commands

import (
	"context"
)

// PurgeExpiredProblemsCommandHandler deletes problems past their retention.
type PurgeExpiredProblemsCommandHandler struct {
	uowFactory ProblemUoWFactory
}

func NewPurgeExpiredProblemsCommandHandler(uowFactory ProblemUoWFactory) PurgeExpiredProblemsCommandHandler {
	return PurgeExpiredProblemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deleted problems. Their jobs go with them.
func (h *PurgeExpiredProblemsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredProblemsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.ProblemRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
