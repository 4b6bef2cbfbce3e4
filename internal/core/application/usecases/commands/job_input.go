package commands

import (
	"errors"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

var ErrDemandIsRequired = errs.NewValueIsRequiredError("demand")

type demandKind int

const (
	demandUnset demandKind = iota
	demandSingle
	demandPickup
	demandDelivery
	demandNet
)

// Demand selects how a job's delivery and pickup vectors are obtained.
// Build it with SingleDemand, PickupDemand, DeliveryDemand or NetDemand.
type Demand struct {
	kind     demandKind
	delivery kernel.Amount
	pickup   kernel.Amount
	net      kernel.Amount
}

// SingleDemand carries independent delivery and pickup amounts.
func SingleDemand(delivery, pickup kernel.Amount) Demand {
	return Demand{kind: demandSingle, delivery: delivery.Clone(), pickup: pickup.Clone()}
}

// PickupDemand describes a pickup-only job.
func PickupDemand(amount kernel.Amount) Demand {
	return Demand{kind: demandPickup, pickup: amount.Clone()}
}

// DeliveryDemand describes a delivery-only job.
func DeliveryDemand(amount kernel.Amount) Demand {
	return Demand{kind: demandDelivery, delivery: amount.Clone()}
}

// NetDemand carries a signed amount split into delivery and pickup by sign.
func NetDemand(amount kernel.Amount) Demand {
	return Demand{kind: demandNet, net: amount.Clone()}
}

// Size returns the number of capacity dimensions of the demand.
func (d Demand) Size() int {
	switch d.kind {
	case demandSingle, demandDelivery:
		return d.delivery.Size()
	case demandPickup:
		return d.pickup.Size()
	case demandNet:
		return d.net.Size()
	default:
		return 0
	}
}

func (d Demand) validate() error {
	if d.kind == demandUnset {
		return ErrDemandIsRequired
	}
	return nil
}

// UserTimeWindow is a time window in user seconds.
type UserTimeWindow struct {
	Start kernel.UserDuration
	End   kernel.UserDuration
}

// JobInput is a raw job as submitted by a client, durations in user seconds.
// An empty TimeWindows list means the job can be served at any time.
type JobInput struct {
	ID          uint64
	Location    kernel.Location
	Setup       kernel.UserDuration
	Service     kernel.UserDuration
	Skills      kernel.Skills
	Priority    kernel.Priority
	TimeWindows []UserTimeWindow
	Description string
	Demand      Demand
}

func (in JobInput) validate() error {
	return errors.Join(in.Location.Validate(), in.Demand.validate())
}

// buildJob turns a raw job into a validated domain Job using the problem's factory.
func buildJob(factory job.Factory, in JobInput) (*job.Job, error) {
	tws, err := scaleTimeWindows(factory.Scale(), in.TimeWindows)
	if err != nil {
		return nil, err
	}

	attrs := job.Attributes{
		ID:          in.ID,
		Location:    in.Location,
		Setup:       in.Setup,
		Service:     in.Service,
		Skills:      in.Skills,
		Priority:    in.Priority,
		TimeWindows: tws,
		Description: in.Description,
	}

	d := in.Demand
	switch d.kind {
	case demandSingle:
		return factory.NewSingle(attrs, d.delivery, d.pickup)
	case demandPickup:
		return factory.NewTyped(attrs, job.PickupOf(d.pickup))
	case demandDelivery:
		return factory.NewTyped(attrs, job.DeliveryOf(d.delivery))
	case demandNet:
		return factory.NewFromNetAmount(attrs, d.net)
	default:
		return nil, ErrDemandIsRequired
	}
}

func scaleTimeWindows(scale kernel.DurationScale, raw []UserTimeWindow) ([]kernel.TimeWindow, error) {
	if len(raw) == 0 {
		return []kernel.TimeWindow{kernel.DefaultTimeWindow()}, nil
	}

	tws := make([]kernel.TimeWindow, 0, len(raw))
	for _, r := range raw {
		tw, err := kernel.NewUserTimeWindow(scale, r.Start, r.End)
		if err != nil {
			return nil, err
		}
		tws = append(tws, tw)
	}
	return tws, nil
}
