package kernel

import (
	"fmt"
	"math"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

// Duration is the solver-internal scaled time unit.
type Duration int64

// UserDuration is the caller-facing time unit (seconds).
type UserDuration uint32

const (
	// DefaultDurationFactor is the number of internal units per user second.
	DefaultDurationFactor int64 = 100

	// MaxDuration is the largest representable internal instant.
	MaxDuration Duration = math.MaxInt64

	// MaxDurationFactor is the largest factor for which ToInternal cannot
	// overflow on any UserDuration.
	MaxDurationFactor int64 = math.MaxInt64 / math.MaxUint32
)

var ErrDurationScaleIsNotConstructed = errs.NewValueIsRequiredError(
	"duration scale must be created via NewDurationScale constructor")

// DurationScale converts between user and internal durations with a fixed,
// problem-wide factor. Every job of a problem must use the same scale.
type DurationScale struct {
	factor int64
	guard  guard.ConstructorGuard
}

// NewDurationScale creates a scale with the given number of internal units per
// user second. The factor must lie in [1, MaxDurationFactor].
func NewDurationScale(factor int64) (DurationScale, error) {
	if factor <= 0 {
		return DurationScale{}, errs.NewValueIsInvalidErrorWithCause(
			"duration factor", fmt.Errorf("%d is not greater than 0", factor))
	}
	if factor > MaxDurationFactor {
		return DurationScale{}, errs.NewValueIsOutOfRangeError("duration factor", factor, 1, MaxDurationFactor)
	}
	return DurationScale{factor: factor, guard: guard.NewConstructorGuard()}, nil
}

// DefaultDurationScale returns the scale using DefaultDurationFactor.
func DefaultDurationScale() DurationScale {
	return DurationScale{factor: DefaultDurationFactor, guard: guard.NewConstructorGuard()}
}

func (s DurationScale) Validate() error {
	return s.guard.Validate(ErrDurationScaleIsNotConstructed)
}

// Factor returns the number of internal units per user second.
func (s DurationScale) Factor() int64 {
	return s.factor
}

// ToInternal scales a user duration into internal units. The factor bound
// keeps the product inside int64.
func (s DurationScale) ToInternal(d UserDuration) Duration {
	return Duration(int64(d) * s.factor)
}

// ToUser converts back to user units, truncating sub-second remainders.
func (s DurationScale) ToUser(d Duration) UserDuration {
	return UserDuration(int64(d) / s.factor)
}
