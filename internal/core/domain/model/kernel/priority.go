package kernel

import (
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

// Priority expresses relative importance among jobs; higher is more important.
type Priority int

// DefaultMaxPriority is the upper bound used when none is configured.
const DefaultMaxPriority Priority = 100

var ErrPriorityRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"priority range must be created via NewPriorityRange or DefaultPriorityRange constructors")

// PriorityRange is the configured closed interval of valid priorities.
type PriorityRange struct {
	minValue Priority
	maxValue Priority
	guard    guard.ConstructorGuard
}

// NewPriorityRange creates [minValue, maxValue]. Priorities are never negative.
func NewPriorityRange(minValue, maxValue Priority) (PriorityRange, error) {
	if minValue < 0 {
		return PriorityRange{}, errs.NewValueIsInvalidErrorWithCause(
			"priority range", fmt.Errorf("minimum %d is negative", minValue))
	}
	if minValue > maxValue {
		return PriorityRange{}, errs.NewValueIsInvalidErrorWithCause(
			"priority range", fmt.Errorf("minimum %d is greater than maximum %d", minValue, maxValue))
	}
	return PriorityRange{minValue: minValue, maxValue: maxValue, guard: guard.NewConstructorGuard()}, nil
}

// DefaultPriorityRange returns [0, DefaultMaxPriority].
func DefaultPriorityRange() PriorityRange {
	return PriorityRange{minValue: 0, maxValue: DefaultMaxPriority, guard: guard.NewConstructorGuard()}
}

func (r PriorityRange) Validate() error {
	return r.guard.Validate(ErrPriorityRangeIsNotConstructed)
}

func (r PriorityRange) Min() Priority {
	return r.minValue
}

func (r PriorityRange) Max() Priority {
	return r.maxValue
}

// Contains reports min <= p <= max.
func (r PriorityRange) Contains(p Priority) bool {
	return r.minValue <= p && p <= r.maxValue
}
