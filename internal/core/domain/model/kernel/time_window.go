package kernel

import (
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or DefaultTimeWindow constructors")

// TimeWindow is the closed interval [start, end] during which service may begin.
type TimeWindow struct {
	start Duration
	end   Duration
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window in internal units. start must be
// non-negative and not after end.
func NewTimeWindow(start, end Duration) (TimeWindow, error) {
	if start < 0 {
		return TimeWindow{}, errs.NewInputErrorWithCause(
			fmt.Sprintf("invalid time window [%d, %d]", start, end),
			errs.NewValueIsOutOfRangeError("start", start, 0, MaxDuration))
	}
	if start > end {
		return TimeWindow{}, errs.NewInputError("invalid time window [%d, %d]: start is after end", start, end)
	}

	return TimeWindow{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// NewUserTimeWindow creates a window from user-unit bounds using scale.
func NewUserTimeWindow(scale DurationScale, start, end UserDuration) (TimeWindow, error) {
	return NewTimeWindow(scale.ToInternal(start), scale.ToInternal(end))
}

// DefaultTimeWindow is [0, MaxDuration], used when a job has no explicit window.
func DefaultTimeWindow() TimeWindow {
	return TimeWindow{start: 0, end: MaxDuration, guard: guard.NewConstructorGuard()}
}

func (tw TimeWindow) Validate() error {
	return tw.guard.Validate(ErrTimeWindowIsNotConstructed)
}

func (tw TimeWindow) Start() Duration {
	return tw.start
}

func (tw TimeWindow) End() Duration {
	return tw.end
}

// Length is end - start.
func (tw TimeWindow) Length() Duration {
	return tw.end - tw.start
}

// Contains reports start <= t <= end (both ends inclusive).
func (tw TimeWindow) Contains(t Duration) bool {
	return tw.start <= t && t <= tw.end
}

// IsDefault reports whether tw spans the whole horizon.
func (tw TimeWindow) IsDefault() bool {
	return tw.start == 0 && tw.end == MaxDuration
}

func (tw TimeWindow) String() string {
	return fmt.Sprintf("[%d, %d]", tw.start, tw.end)
}
