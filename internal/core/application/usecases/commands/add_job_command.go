package commands

import (
	"errors"
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrAddJobCommandIsNotConstructed = errors.New(
		"AddJobCommand must be created via NewAddJobCommand constructor",
	)
)

// AddJobCommand represents a request to append one job to an existing problem.
//
// Example:
//
//	cmd, err := NewAddJobCommand(problemID, JobInput{
//	    ID:       9,
//	    Location: kernel.NewLocationFromIndex(4),
//	    Demand:   PickupDemand(kernel.Amount{2}),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid job: %w", err)
//	}
type AddJobCommand struct { //nolint:recvcheck //using for validation
	problemID kernel.UUID
	job       JobInput

	guard guard.ConstructorGuard
}

func NewAddJobCommand(problemID kernel.UUID, in JobInput) (AddJobCommand, error) {
	command := AddJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProblemID(problemID),
		command.setJob(in),
	); err != nil {
		return AddJobCommand{}, err
	}

	return command, nil
}

func (c AddJobCommand) Validate() error {
	return c.guard.Validate(ErrAddJobCommandIsNotConstructed)
}

func (c AddJobCommand) ProblemID() kernel.UUID {
	return c.problemID
}

func (c AddJobCommand) Job() JobInput {
	return c.job
}

func (c *AddJobCommand) setProblemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.problemID = id
	return nil
}

func (c *AddJobCommand) setJob(in JobInput) error {
	if err := in.validate(); err != nil {
		return fmt.Errorf("job %d: %w", in.ID, err)
	}

	c.job = in
	return nil
}
