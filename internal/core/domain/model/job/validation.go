package job

import (
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

// CheckTimeWindows enforces a non-empty list of strictly increasing,
// non-touching windows: tws[i+1].Start() > tws[i].End().
func CheckTimeWindows(tws []kernel.TimeWindow, id uint64) error {
	if len(tws) == 0 {
		return errs.NewInputError("empty time windows for job %d", id)
	}

	for i := 0; i+1 < len(tws); i++ {
		if tws[i+1].Start() <= tws[i].End() {
			return errs.NewInputError("unsorted or overlapping time windows for job %d", id)
		}
	}

	return nil
}

// CheckPriority enforces priority within bounds.
func CheckPriority(priority kernel.Priority, bounds kernel.PriorityRange, id uint64) error {
	if !bounds.Contains(priority) {
		return errs.NewInputErrorWithCause(
			fmt.Sprintf("invalid priority value for job %d", id),
			errs.NewValueIsOutOfRangeError("priority", priority, bounds.Min(), bounds.Max()),
		)
	}
	return nil
}

// TimeWindowsLength sums the window lengths. It fails on an empty list instead
// of reading past the end.
func TimeWindowsLength(tws []kernel.TimeWindow) (kernel.Duration, error) {
	if len(tws) == 0 {
		return 0, errs.NewInputError("empty time windows")
	}

	var total kernel.Duration
	for _, tw := range tws {
		total += tw.Length()
	}
	return total, nil
}
