package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	ErrPurgeExpiredProblemsCommandIsNotConstructed = errors.New(
		"PurgeExpiredProblemsCommand must be created via NewPurgeExpiredProblemsCommand constructor",
	)
)

// PurgeExpiredProblemsCommand removes every problem created before Cutoff.
type PurgeExpiredProblemsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeExpiredProblemsCommand computes the cutoff as now minus retention.
func NewPurgeExpiredProblemsCommand(now time.Time, retention time.Duration) (PurgeExpiredProblemsCommand, error) {
	if now.IsZero() {
		return PurgeExpiredProblemsCommand{}, errs.NewValueIsRequiredError("now")
	}
	if retention <= 0 {
		return PurgeExpiredProblemsCommand{}, errs.NewValueIsInvalidErrorWithCause("retention", fmt.Errorf("%s is not positive", retention))
	}

	return PurgeExpiredProblemsCommand{
		cutoff: now.Add(-retention).UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeExpiredProblemsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredProblemsCommandIsNotConstructed)
}

func (c PurgeExpiredProblemsCommand) Cutoff() time.Time {
	return c.cutoff
}
