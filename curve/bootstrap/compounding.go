package bootstrap

import (
	"math"

	"github.com/pkg/errors"
)

// DiscountFactor returns the discount factor of zero rate r over t years.
// periodsPerYear is only used by the periodic convention.
func DiscountFactor(conv Convention, periodsPerYear int, r, t float64) (float64, error) {
	if err := checkCompounding(conv, periodsPerYear); err != nil {
		return 0, err
	}
	if conv == Periodic {
		m := float64(periodsPerYear)
		return math.Pow(1+r/m, -m*t), nil
	}
	return math.Exp(-r * t), nil
}

func checkCompounding(conv Convention, periodsPerYear int) error {
	switch conv {
	case Continuous:
		return nil
	case Periodic:
		if periodsPerYear <= 0 {
			return errors.Wrapf(ErrInvalidCurveInput, "non-positive compounding frequency %d", periodsPerYear)
		}
		return nil
	default:
		return errors.Wrapf(ErrInvalidCurveInput, "unknown compounding convention %s", conv)
	}
}

// ZeroRate solves DiscountFactor(conv, periodsPerYear, r, t)·finalAmount = presentValue for r.
//
//	continuous: r = −ln(pv/F) / t
//	periodic:   r = m·((F/pv)^(1/(m·t)) − 1)
func ZeroRate(conv Convention, periodsPerYear int, finalAmount, presentValue, t float64) (float64, error) {
	if err := checkCompounding(conv, periodsPerYear); err != nil {
		return 0, err
	}
	if t <= 0 {
		return 0, errors.Wrapf(ErrInvalidCurveInput, "non-positive time to maturity %g", t)
	}
	if finalAmount <= 0 {
		return 0, errors.Wrapf(ErrInvalidCurveInput, "non-positive final amount %g", finalAmount)
	}
	if presentValue <= 0 {
		return 0, errors.Wrapf(ErrInvalidCurveInput, "non-positive residual present value %g", presentValue)
	}

	var r float64
	switch conv {
	case Periodic:
		m := float64(periodsPerYear)
		r = m * (math.Pow(finalAmount/presentValue, 1/(m*t)) - 1)
	case Continuous:
		r = -math.Log(presentValue/finalAmount) / t
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, errors.Wrapf(ErrInvalidCurveInput, "non-finite zero rate for pv %g, final %g, t %g", presentValue, finalAmount, t)
	}
	return r, nil
}
