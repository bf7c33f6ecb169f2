package fpval

import "github.com/yws/fltcalc/internal/sc"

// Flt2IntResult reports the outcome of converting a float Value to a
// fixed-width integer buffer.
type Flt2IntResult int

const (
	Flt2IntOK Flt2IntResult = iota
	Flt2IntPositiveOverflow
	Flt2IntNegativeOverflow
	Flt2IntBad
)

func (r Flt2IntResult) String() string {
	switch r {
	case Flt2IntOK:
		return "ok"
	case Flt2IntPositiveOverflow:
		return "positive overflow"
	case Flt2IntNegativeOverflow:
		return "negative overflow"
	default:
		return "bad"
	}
}

// Flt2Int converts a, which must already be an integral value (callers
// truncate with Trunc first), into result as a two's complement integer of
// resultBits bits (one of which is the sign bit when resultSigned).
// a must not be NaN or Subnormal; both are reported as Flt2IntBad, along
// with a negative value destined for an unsigned result.
func Flt2Int(a *Value, result []sc.Word, resultBits int, resultSigned bool) Flt2IntResult {
	switch a.Class {
	case Zero:
		sc.Zero(result)
		return Flt2IntOK
	case Inf:
		if a.Sign {
			return Flt2IntNegativeOverflow
		}
		return Flt2IntPositiveOverflow
	case Normal:
		if a.Sign && !resultSigned {
			return Flt2IntBad
		}

		tgtBits := resultBits
		if resultSigned {
			tgtBits--
		}

		expBias := a.Desc.Bias()
		expVal := int(sc.ValToLong(a.Exponent)) - expBias

		if expVal > tgtBits || (expVal == tgtBits &&
			(!resultSigned || !a.Sign ||
				sc.GetHighestSetBit(a.Mantissa) != sc.GetLowestSetBit(a.Mantissa))) {
			if a.Sign {
				return Flt2IntNegativeOverflow
			}
			return Flt2IntPositiveOverflow
		}

		mantissaSize := int(a.Desc.MantissaSize) + RoundingBits
		shift := expVal - (mantissaSize - int(a.Desc.ExplicitOne))

		if tgtBits < mantissaSize+1 {
			tgtBits = mantissaSize + 1
		} else if resultSigned {
			tgtBits++
		}

		if shift > 0 {
			sc.ShlI(a.Mantissa, shift, result)
			sc.ZeroExtend(result, tgtBits)
		} else {
			sc.ShrI(a.Mantissa, -shift, result)
		}
		if a.Sign {
			sc.Neg(result, result)
		}
		return Flt2IntOK
	default:
		return Flt2IntBad
	}
}
