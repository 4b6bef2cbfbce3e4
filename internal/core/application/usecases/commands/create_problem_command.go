package commands

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrCreateProblemCommandIsNotConstructed = errors.New(
		"CreateProblemCommand must be created via NewCreateProblemCommand constructor",
	)
)

// CreateProblemCommand represents a request to register a routing problem made
// of raw jobs. A fresh problem ID is generated on construction.
//
// Example:
//
//	cmd, err := NewCreateProblemCommand(1, []JobInput{{
//	    ID:       1,
//	    Location: kernel.NewLocationFromIndex(0),
//	    Demand:   NetDemand(kernel.Amount{-3}),
//	}})
//	if err != nil {
//	    return fmt.Errorf("invalid problem: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create problem: %w", err)
//	}
//	fmt.Printf("Created problem %s", cmd.ProblemID())
type CreateProblemCommand struct { //nolint:recvcheck //using for validation
	problemID  kernel.UUID
	amountSize int
	jobs       []JobInput

	guard guard.ConstructorGuard
}

// NewCreateProblemCommand creates a command for a problem whose jobs carry
// amountSize capacity dimensions.
func NewCreateProblemCommand(amountSize int, jobs []JobInput) (CreateProblemCommand, error) {
	command := CreateProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProblemID(kernel.NewUUID()),
		command.setAmountSize(amountSize),
		command.setJobs(jobs),
	); err != nil {
		return CreateProblemCommand{}, err
	}

	return command, nil
}

func (c CreateProblemCommand) Validate() error {
	return c.guard.Validate(ErrCreateProblemCommandIsNotConstructed)
}

func (c CreateProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

func (c CreateProblemCommand) AmountSize() int {
	return c.amountSize
}

// Jobs returns the raw jobs in submission order.
func (c CreateProblemCommand) Jobs() []JobInput {
	return slices.Clone(c.jobs)
}

func (c *CreateProblemCommand) setProblemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.problemID = id
	return nil
}

func (c *CreateProblemCommand) setAmountSize(size int) error {
	if size < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount size", fmt.Errorf("%d is negative", size))
	}

	c.amountSize = size
	return nil
}

func (c *CreateProblemCommand) setJobs(jobs []JobInput) error {
	var errList []error
	for _, in := range jobs {
		if err := in.validate(); err != nil {
			errList = append(errList, fmt.Errorf("job %d: %w", in.ID, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.jobs = slices.Clone(jobs)
	return nil
}
