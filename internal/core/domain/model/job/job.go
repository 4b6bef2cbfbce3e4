package job

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not created through
	// a Factory or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via Factory or RestoreJob")
)

// Job is the immutable description of a single task (pickup, delivery or
// combined) the solver must schedule.
//
// Job follows these invariants:
//   - At least one time window
//   - Windows strictly ordered and non-touching: tws[i+1].Start() > tws[i].End()
//   - TWLength equals the sum of window lengths, computed once
//   - Pickup/Delivery jobs carry their amount in one slot and zeros in the other
//   - Priority lies within the problem's configured range
//
// No field is written after construction, so a Job may be read from any
// number of goroutines without synchronization. Accessors returning slices
// hand out copies.
type Job struct {
	id          uint64
	location    kernel.Location
	jobType     Type
	setup       kernel.Duration
	service     kernel.Duration
	delivery    kernel.Amount
	pickup      kernel.Amount
	skills      kernel.Skills
	priority    kernel.Priority
	tws         []kernel.TimeWindow
	twLength    kernel.Duration
	description string

	guard guard.ConstructorGuard
}

// RestoreJob reconstructs a Job from persisted values. Durations are already
// in internal units. All invariants are checked again, so corrupted rows are
// rejected rather than silently loaded.
func RestoreJob(
	id uint64,
	location kernel.Location,
	jobType Type,
	setup, service kernel.Duration,
	delivery, pickup kernel.Amount,
	skills kernel.Skills,
	priority kernel.Priority,
	tws []kernel.TimeWindow,
	description string,
	priorities kernel.PriorityRange,
) (*Job, error) {
	if err := jobType.Validate(); err != nil {
		return nil, err
	}

	var typedErr error
	switch jobType {
	case Pickup:
		if !delivery.IsZero() {
			typedErr = errs.NewInputError("pickup job %d has a non-zero delivery amount", id)
		}
	case Delivery:
		if !pickup.IsZero() {
			typedErr = errs.NewInputError("delivery job %d has a non-zero pickup amount", id)
		}
	}
	if typedErr != nil {
		return nil, typedErr
	}

	return newJob(id, location, jobType, setup, service, delivery, pickup, skills, priority, tws, description, priorities)
}

func newJob(
	id uint64,
	location kernel.Location,
	jobType Type,
	setup, service kernel.Duration,
	delivery, pickup kernel.Amount,
	skills kernel.Skills,
	priority kernel.Priority,
	tws []kernel.TimeWindow,
	description string,
	priorities kernel.PriorityRange,
) (*Job, error) {
	j := &Job{
		id:          id,
		jobType:     jobType,
		skills:      skills,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setLocation(location),
		j.setDurations(setup, service),
		j.setAmounts(delivery, pickup),
		j.setPriority(priority, priorities),
		j.setTimeWindows(tws),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id == other.id
}

// ID returns the stable identifier the solver refers to the job by.
func (j *Job) ID() uint64 {
	return j.id
}

func (j *Job) Location() kernel.Location {
	return j.location
}

func (j *Job) Type() Type {
	return j.jobType
}

// Setup returns the setup duration in internal units.
func (j *Job) Setup() kernel.Duration {
	return j.setup
}

// Service returns the service duration in internal units.
func (j *Job) Service() kernel.Duration {
	return j.service
}

// Delivery returns a copy of the amount unloaded at the job.
func (j *Job) Delivery() kernel.Amount {
	return j.delivery.Clone()
}

// Pickup returns a copy of the amount loaded at the job.
func (j *Job) Pickup() kernel.Amount {
	return j.pickup.Clone()
}

func (j *Job) Skills() kernel.Skills {
	return j.skills
}

func (j *Job) Priority() kernel.Priority {
	return j.priority
}

// TimeWindows returns a copy of the ordered windows.
func (j *Job) TimeWindows() []kernel.TimeWindow {
	return slices.Clone(j.tws)
}

// TWLength returns the cached sum of window lengths.
func (j *Job) TWLength() kernel.Duration {
	return j.twLength
}

func (j *Job) Description() string {
	return j.description
}

// IsValidStart reports whether service may begin at t, i.e. t lies inside one
// of the windows (both ends inclusive).
//
// The scan stops as soon as a window starts after t. That early exit is only
// correct because windows are sorted and non-overlapping, which construction
// guarantees; an exhaustive scan gives the same answer.
func (j *Job) IsValidStart(t kernel.Duration) bool {
	for _, tw := range j.tws {
		if tw.Contains(t) {
			return true
		}
		if t < tw.Start() {
			return false
		}
	}
	return false
}

func (j *Job) String() string {
	return fmt.Sprintf("Job(%d,%s,%s)", j.id, j.jobType, j.location)
}

func (j *Job) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}

func (j *Job) setDurations(setup, service kernel.Duration) error {
	if setup < 0 || service < 0 {
		return errs.NewInputError("negative setup or service duration for job %d", j.id)
	}
	j.setup = setup
	j.service = service
	return nil
}

func (j *Job) setAmounts(delivery, pickup kernel.Amount) error {
	if delivery.Size() != pickup.Size() {
		return errs.NewInputErrorWithCause(
			fmt.Sprintf("inconsistent delivery and pickup lengths for job %d", j.id),
			fmt.Errorf("delivery has %d dimensions, pickup has %d", delivery.Size(), pickup.Size()),
		)
	}
	if delivery.HasNegative() || pickup.HasNegative() {
		return errs.NewInputError("negative amount for job %d", j.id)
	}

	j.delivery = delivery.Clone()
	j.pickup = pickup.Clone()
	return nil
}

func (j *Job) setPriority(priority kernel.Priority, priorities kernel.PriorityRange) error {
	if err := CheckPriority(priority, priorities, j.id); err != nil {
		return err
	}
	j.priority = priority
	return nil
}

func (j *Job) setTimeWindows(tws []kernel.TimeWindow) error {
	for _, tw := range tws {
		if err := tw.Validate(); err != nil {
			return err
		}
	}
	if err := CheckTimeWindows(tws, j.id); err != nil {
		return err
	}

	length, err := TimeWindowsLength(tws)
	if err != nil {
		return err
	}

	j.tws = slices.Clone(tws)
	j.twLength = length
	return nil
}
