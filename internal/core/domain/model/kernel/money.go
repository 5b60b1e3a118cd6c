package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Money is a value object representing a non-negative amount of money in
// minor currency units. Formatting into major units is a presentation
// concern and stays outside the domain.
//
// The zero value is a valid amount of zero, so Money can be embedded in
// aggregates without a constructor guard. Negative amounts are rejected at
// construction.
//
// Example:
//
//	price, err := kernel.NewMoney(10000)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price.Amount()) // 10000
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Sub returns m minus other. Returns an error if the result would be negative,
// which keeps the non-negativity invariant closed under arithmetic.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount - other.amount)
}

// String returns the amount in minor units as a decimal string.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
