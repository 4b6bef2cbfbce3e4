package job

import (
	"errors"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

// ErrFactoryIsNotConstructed is returned by a zero-value Factory.
var ErrFactoryIsNotConstructed = errors.New("Factory must be created via NewFactory constructor")

// Attributes are the fields shared by every construction path. Setup and
// Service are in user units; the Factory scales them.
type Attributes struct {
	ID          uint64
	Location    kernel.Location
	Setup       kernel.UserDuration
	Service     kernel.UserDuration
	Skills      kernel.Skills
	Priority    kernel.Priority
	TimeWindows []kernel.TimeWindow
	Description string
}

// Factory builds validated Jobs for one problem. It holds the problem-wide
// duration scale and priority bounds so every job is built the same way.
//
// Example:
//
//	f, err := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
//	if err != nil {
//	    return err
//	}
//	j, err := f.NewTyped(attrs, job.DeliveryOf(kernel.Amount{4, 0}))
//	if err != nil {
//	    // errors.Is(err, errs.ErrInput): reject the problem
//	}
type Factory struct {
	scale      kernel.DurationScale
	priorities kernel.PriorityRange
	guard      guard.ConstructorGuard
}

// NewFactory validates scale and priorities and returns a ready Factory.
func NewFactory(scale kernel.DurationScale, priorities kernel.PriorityRange) (Factory, error) {
	if err := errors.Join(scale.Validate(), priorities.Validate()); err != nil {
		return Factory{}, err
	}

	return Factory{
		scale:      scale,
		priorities: priorities,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (f Factory) Validate() error {
	return f.guard.Validate(ErrFactoryIsNotConstructed)
}

// Scale returns the problem-wide duration scale.
func (f Factory) Scale() kernel.DurationScale {
	return f.scale
}

// Priorities returns the configured priority bounds.
func (f Factory) Priorities() kernel.PriorityRange {
	return f.priorities
}

// NewSingle builds a job whose delivery and pickup are independent and may
// both be non-zero.
func (f Factory) NewSingle(attrs Attributes, delivery, pickup kernel.Amount) (*Job, error) {
	return f.build(attrs, Single, delivery, pickup)
}

// NewTyped builds a pickup-only or delivery-only job. The supplied amount goes
// into the matching slot and the other slot is zero with the same size.
func (f Factory) NewTyped(attrs Attributes, demand TypedDemand) (*Job, error) {
	if demand == nil {
		return nil, ErrTypedDemandIsRequired
	}

	delivery, pickup := demand.split()
	return f.build(attrs, demand.jobType(), delivery, pickup)
}

// NewFromNetAmount builds a Single job from a signed net demand: positive
// components are delivered, negative ones picked up.
func (f Factory) NewFromNetAmount(attrs Attributes, amount kernel.Amount) (*Job, error) {
	return f.build(attrs, Single, kernel.DeliveryMask(amount), kernel.PickupMask(amount))
}

func (f Factory) build(attrs Attributes, jobType Type, delivery, pickup kernel.Amount) (*Job, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return newJob(
		attrs.ID,
		attrs.Location,
		jobType,
		f.scale.ToInternal(attrs.Setup),
		f.scale.ToInternal(attrs.Service),
		delivery,
		pickup,
		attrs.Skills,
		attrs.Priority,
		attrs.TimeWindows,
		attrs.Description,
		f.priorities,
	)
}
