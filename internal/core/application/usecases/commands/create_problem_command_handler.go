package commands

import (
	"context"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
)

// CreateProblemCommandHandler builds every job of a new problem and persists
// the aggregate. The first invalid job aborts the whole problem.
//
// Example:
//
//	factory, _ := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
//	handler := NewCreateProblemCommandHandler(uowFactory, factory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrInput) {
//	        // reject the request
//	    }
//	    return err
//	}
type CreateProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
	factory    job.Factory
	now        func() time.Time
}

// NewCreateProblemCommandHandler creates a handler building jobs with factory.
func NewCreateProblemCommandHandler(uowFactory ProblemUoWFactory, factory job.Factory) CreateProblemCommandHandler {
	return CreateProblemCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		now:        time.Now,
	}
}

// Handle validates the command, builds the problem and stores it within a
// transaction. Nothing is persisted when any job fails validation.
func (h *CreateProblemCommandHandler) Handle(ctx context.Context, cmd CreateProblemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := problem.NewProblem(cmd.ProblemID(), cmd.AmountSize(), h.factory, h.now())
	if err != nil {
		return err
	}

	for _, in := range cmd.Jobs() {
		j, buildErr := buildJob(aggregate.Factory(), in)
		if buildErr != nil {
			return buildErr
		}
		if err = aggregate.AddJob(j); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProblemRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
