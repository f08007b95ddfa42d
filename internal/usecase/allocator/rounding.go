package allocator

import (
	"github.com/shopspring/decimal"

	"github.com/harborpoint/moneygate-backend/internal/domain"
)

var decimalOne = decimal.NewFromInt(1)

// RoundedDivide divides integer cents using round-half-to-even ("banker's
// rounding"). Repeatedly splitting money with half-up rounding drifts
// upward; ties resolved to the even quotient do not.
//
// The result q satisfies |q*divisor - dividend| <= divisor/2, with ties
// resolved to even q. Returns ErrDivisionByZero when divisor is zero.
func RoundedDivide(dividend, divisor int64) (int64, error) {
	if divisor == 0 {
		return 0, domain.ErrDivisionByZero
	}
	q := roundHalfEven(decimal.NewFromInt(dividend), decimal.NewFromInt(divisor))
	return q.IntPart(), nil
}

// roundHalfEven divides two integer-valued decimals, rounding half to even.
// Decimal arithmetic keeps the widening products used by the allocator
// (available*bps, bucket*requested) exact where an int64 multiply could
// overflow. The divisor must be non-zero.
func roundHalfEven(dividend, divisor decimal.Decimal) decimal.Decimal {
	quotient, remainder := dividend.QuoRem(divisor, 0)
	if remainder.IsZero() {
		return quotient
	}

	twiceRemainder := remainder.Abs().Add(remainder.Abs())
	cmp := twiceRemainder.Cmp(divisor.Abs())
	if cmp < 0 {
		return quotient
	}
	if cmp == 0 && quotient.IntPart()%2 == 0 {
		return quotient
	}

	// Round away from zero: exactly past (or at, with an odd quotient) the
	// midpoint. QuoRem truncates toward zero, so stepping away is one unit
	// in the sign of the exact quotient.
	if dividend.Sign()*divisor.Sign() < 0 {
		return quotient.Sub(decimalOne)
	}
	return quotient.Add(decimalOne)
}
