package finance

import (
	"fmt"
	"math"
)

// AmortizedPayment returns the fixed periodic payment that repays principal
// over periods equal installments at the given periodic rate.
//
//	M = P * r(1+r)^n / ((1+r)^n - 1)
//
// A zero rate reduces to P / n. The growth term (1+r)^n - 1 is evaluated as
// expm1(n*log1p(r)) so tiny rates keep their precision; when it overflows
// the payment converges to the interest-only P * r.
func AmortizedPayment(principal, rate float64, periods int) (float64, error) {
	if !isFinite(principal) || principal < 0 {
		return 0, fmt.Errorf("%w: principal %v must be a non-negative number", ErrInvalidArgument, principal)
	}
	if !isFinite(rate) || rate < 0 {
		return 0, fmt.Errorf("%w: rate %v must be a non-negative number", ErrInvalidArgument, rate)
	}
	if periods < 1 {
		return 0, fmt.Errorf("%w: periods %d must be at least 1", ErrInvalidArgument, periods)
	}

	if principal == 0 {
		return 0, nil
	}
	if rate == 0 {
		return principal / float64(periods), nil
	}

	g1 := math.Expm1(float64(periods) * math.Log1p(rate))
	return principal * (rate + rate/g1), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
