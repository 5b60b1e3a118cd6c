package services

import (
	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
)

// CommissionBreakdown is the result of splitting a final price between the
// platform and the master. Commission plus Payout always equals the price it
// was derived from.
type CommissionBreakdown struct {
	// Commission is the platform's share of the price.
	Commission kernel.Money

	// Payout is the amount owed to the master.
	Payout kernel.Money
}

// CommissionCalculator is a domain service that derives the payable amount to
// a master from an order's final price and the actor's commission rate.
//
// The rate is owned by the actor record and is range-checked at profile load
// time, so calculation never re-validates it. Amounts are integers in the
// minor currency unit; the commission is rounded half-up.
type CommissionCalculator struct{}

// NewCommissionCalculator creates a new CommissionCalculator instance.
func NewCommissionCalculator() CommissionCalculator {
	return CommissionCalculator{}
}

// Calculate splits the price per the commission rate.
//
// commission = round(price * rate / 100), rounded half-up; payout is the
// remainder, so the two always sum back to the price.
func (c CommissionCalculator) Calculate(price kernel.Money, rate actor.CommissionRate) (CommissionBreakdown, error) {
	// Half-up rounding via integer math: amounts and rates are non-negative.
	commissionAmount := (price.Amount()*int64(rate.Percent()) + 50) / 100

	commission, err := kernel.NewMoney(commissionAmount)
	if err != nil {
		return CommissionBreakdown{}, err
	}

	payout, err := price.Sub(commission)
	if err != nil {
		return CommissionBreakdown{}, err
	}

	return CommissionBreakdown{Commission: commission, Payout: payout}, nil
}
