package kernel

import (
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

// Capacity is a quantity along one capacity dimension.
type Capacity = int64

// Amount is an ordered vector of quantities, one per capacity dimension.
// Dimensionality must match across a problem; the Problem aggregate enforces
// that, not Amount itself.
type Amount []Capacity

// NewAmount returns the zero vector of the given dimensionality.
func NewAmount(size int) Amount {
	return make(Amount, size)
}

// Size returns the number of capacity dimensions.
func (a Amount) Size() int {
	return len(a)
}

// Clone returns an independent copy. The copy is never nil.
func (a Amount) Clone() Amount {
	c := make(Amount, len(a))
	copy(c, a)
	return c
}

// IsZero reports whether every component is 0.
func (a Amount) IsZero() bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}

// Add returns a + other. Both must share dimensionality.
func (a Amount) Add(other Amount) (Amount, error) {
	if err := a.checkSameSize(other); err != nil {
		return nil, err
	}

	sum := a.Clone()
	for i := range other {
		sum[i] += other[i]
	}
	return sum, nil
}

// HasNegative reports whether any component is negative.
func (a Amount) HasNegative() bool {
	for _, v := range a {
		if v < 0 {
			return true
		}
	}
	return false
}

func (a Amount) checkSameSize(other Amount) error {
	if len(a) != len(other) {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("size %d does not match size %d", len(other), len(a)))
	}
	return nil
}

// DeliveryMask keeps positive components of a signed net demand and zeroes the rest.
//
//	DeliveryMask(Amount{5, -3, 0}) // Amount{5, 0, 0}
func DeliveryMask(amount Amount) Amount {
	d := NewAmount(len(amount))
	for i, v := range amount {
		if v > 0 {
			d[i] = v
		}
	}
	return d
}

// PickupMask keeps the magnitude of negative components of a signed net demand.
//
//	PickupMask(Amount{5, -3, 0}) // Amount{0, 3, 0}
func PickupMask(amount Amount) Amount {
	p := NewAmount(len(amount))
	for i, v := range amount {
		if v < 0 {
			p[i] = -v
		}
	}
	return p
}
