package job

import (
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

// Type determines how a job's delivery and pickup vectors are populated.
type Type int

const (
	// Unknown catches uninitialized Type values.
	Unknown Type = iota

	// Single jobs carry independent delivery and pickup amounts.
	Single

	// Pickup jobs load their amount; their delivery vector is zero.
	Pickup

	// Delivery jobs unload their amount; their pickup vector is zero.
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown:  "unknown",
		Single:   "single",
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Single:   "single",
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. read from storage.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("job type is invalid", fmt.Errorf("%d is not a valid job type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ParseType maps a lower-case name back to a valid Type.
func ParseType(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("job type is invalid", fmt.Errorf("%q is not a valid job type", s))
}
