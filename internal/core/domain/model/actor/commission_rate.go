package actor

import (
	"dispatch/internal/pkg/errs"
)

const (
	minCommissionRate = 0
	maxCommissionRate = 100
)

// CommissionRate is the percentage of an order's final price retained by the
// platform when the holding actor completes an order. The range is enforced
// here, at profile load time; the commission calculator assumes a valid rate
// and never re-validates.
//
// The zero value is a valid rate of 0%.
type CommissionRate struct {
	percent int
}

// NewCommissionRate creates a rate from a percentage in [0, 100].
// A value outside the range is a configuration error in the actor profile.
func NewCommissionRate(percent int) (CommissionRate, error) {
	if percent < minCommissionRate || percent > maxCommissionRate {
		return CommissionRate{}, errs.NewValueIsOutOfRangeError(
			"commission rate", percent, minCommissionRate, maxCommissionRate,
		)
	}
	return CommissionRate{percent: percent}, nil
}

// Percent returns the rate as an integer percentage.
func (c CommissionRate) Percent() int {
	return c.percent
}

// IsEqual compares two rates.
func (c CommissionRate) IsEqual(other CommissionRate) bool {
	return c.percent == other.percent
}
