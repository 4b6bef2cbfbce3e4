package job

import (
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

// ErrTypedDemandIsRequired is returned when NewTyped receives a nil demand.
var ErrTypedDemandIsRequired = errs.NewValueIsRequiredError("typed demand")

// TypedDemand is the amount of a one-sided job: either everything is picked up
// or everything is delivered. Values only come from PickupOf and DeliveryOf,
// so a TypedDemand can never describe a Single job.
type TypedDemand interface {
	jobType() Type
	split() (delivery, pickup kernel.Amount)
}

type pickupDemand struct {
	amount kernel.Amount
}

type deliveryDemand struct {
	amount kernel.Amount
}

// PickupOf describes a job that loads amount at its location.
func PickupOf(amount kernel.Amount) TypedDemand {
	return pickupDemand{amount: amount.Clone()}
}

// DeliveryOf describes a job that unloads amount at its location.
func DeliveryOf(amount kernel.Amount) TypedDemand {
	return deliveryDemand{amount: amount.Clone()}
}

func (d pickupDemand) jobType() Type {
	return Pickup
}

func (d pickupDemand) split() (kernel.Amount, kernel.Amount) {
	return kernel.NewAmount(d.amount.Size()), d.amount.Clone()
}

func (d deliveryDemand) jobType() Type {
	return Delivery
}

func (d deliveryDemand) split() (kernel.Amount, kernel.Amount) {
	return d.amount.Clone(), kernel.NewAmount(d.amount.Size())
}
