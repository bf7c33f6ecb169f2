package fpval

import "github.com/yws/fltcalc/internal/sc"

// Trunc truncates the fractional part of a, writing the result to result.
// It does not clip to any integer range and reports no exactness; its
// caller, fltcalc's Engine.Int, always marks the result inexact.
func Trunc(a, result *Value) {
	if result != a {
		result.Desc = a.Desc
		result.Class = a.Class
	}

	expBias := a.Desc.Bias()
	expVal := int(sc.ValToLong(a.Exponent)) - expBias
	if expVal < 0 {
		sc.Zero(result.Exponent)
		sc.Zero(result.Mantissa)
		result.Class = Zero
		return
	}

	effMant := a.Desc.EffectiveMantissa()
	if expVal > effMant {
		if result != a {
			result.CopyFrom(a)
		}
		return
	}

	width := len(result.Mantissa)
	mask := sc.NewBuffer(width)
	sc.MaxFromBits(1+expVal, false, mask)
	sc.ShlI(mask, effMant-expVal+RoundingBits, mask)

	sc.And(a.Mantissa, mask, result.Mantissa)

	if result != a {
		sc.Copy(result.Exponent, a.Exponent)
		result.Sign = a.Sign
	}
}
