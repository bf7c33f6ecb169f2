package fpval

import "github.com/yws/fltcalc/internal/sc"

// handleNaN implements the engine's "NaN poisons everything" rule: if either
// operand is NaN it is copied into result (unexact) and true is returned so
// the caller can return immediately.
func handleNaN(a, b, result *Value) bool {
	if a.Class == NaN {
		result.CopyFrom(a)
		return true
	}
	if b.Class == NaN {
		result.CopyFrom(b)
		return true
	}
	return false
}

// FAdd computes a+b into result, rounding with mode. a must be the operand
// with the exponent that is not smaller (FAdd itself does not reorder);
// fltcalc.Add/Sub establish that ordering before calling in, exactly as
// fc_add/fc_sub do around _fadd. It reports whether the result is exact.
func FAdd(a, b, result *Value, mode RoundingMode) bool {
	exact := true
	if handleNaN(a, b, result) {
		return false
	}

	if result != a && result != b {
		result.Desc = a.Desc
	}

	width := len(result.Mantissa)

	// subtracting reports whether this add is effectively a subtraction of
	// magnitudes (operands have differing signs).
	subtracting := a.Sign != b.Sign

	if subtracting && a.Class == Inf && b.Class == Inf {
		GetQNaN(a.Desc, result)
		return false
	}

	expDiff := sc.NewBuffer(width)
	sc.Sub(a.Exponent, b.Exponent, expDiff)

	var resSign bool
	if subtracting && sc.ValToLong(expDiff) == 0 {
		switch sc.Comp(a.Mantissa, b.Mantissa) {
		case sc.Greater:
			resSign = a.Sign
		case sc.Equal:
			resSign = mode == ToNegative
		case sc.Less:
			resSign = b.Sign
		}
	} else {
		resSign = a.Sign
	}
	result.Sign = resSign

	if a.Class == Zero || b.Class == Inf {
		result.CopyFrom(b)
		result.Sign = resSign
		return b.Class == Normal
	}
	if b.Class == Zero || a.Class == Inf {
		result.CopyFrom(a)
		result.Sign = resSign
		return a.Class == Normal
	}

	if b.Class == Subnormal && a.Class != Subnormal {
		one := sc.NewBuffer(width)
		sc.ValFromULong(1, one)
		sc.Sub(expDiff, one, expDiff)
	}

	temp := sc.NewBuffer(width)
	sticky := sc.Shr(b.Mantissa, expDiff, temp)
	exact = exact && !sticky

	if sticky && subtracting {
		sc.Inc(temp, temp)
	}

	if subtracting {
		if sc.Comp(a.Mantissa, temp) == sc.Less {
			sc.Sub(temp, a.Mantissa, result.Mantissa)
		} else {
			sc.Sub(a.Mantissa, temp, result.Mantissa)
		}
	} else {
		sc.Add(a.Mantissa, temp, result.Mantissa)
	}

	if a.Class == Subnormal && b.Class == Subnormal {
		sc.ShlI(result.Mantissa, 1, result.Mantissa)
	}

	sc.Copy(result.Exponent, a.Exponent)

	return Normalize(result, result, sticky, mode) && exact
}

// FMul computes a*b into result, rounding with mode.
func FMul(a, b, result *Value, mode RoundingMode) bool {
	exact := true
	if handleNaN(a, b, result) {
		return false
	}
	if result != a && result != b {
		result.Desc = a.Desc
	}

	resSign := a.Sign != b.Sign
	result.Sign = resSign

	if a.Class == Zero {
		if b.Class == Inf {
			GetQNaN(a.Desc, result)
			return false
		}
		result.CopyFrom(a)
		result.Sign = resSign
		return true
	}
	if b.Class == Zero {
		if a.Class == Inf {
			GetQNaN(a.Desc, result)
			return false
		}
		result.CopyFrom(b)
		result.Sign = resSign
		return true
	}
	if a.Class == Inf {
		result.CopyFrom(a)
		result.Sign = resSign
		return false
	}
	if b.Class == Inf {
		result.CopyFrom(b)
		result.Sign = resSign
		return false
	}

	width := len(result.Mantissa)
	sc.Add(a.Exponent, b.Exponent, result.Exponent)
	bias := sc.NewBuffer(width)
	sc.ValFromULong(uint64((uint(1)<<(a.Desc.ExponentSize-1))-1), bias)
	sc.Sub(result.Exponent, bias, result.Exponent)

	if (a.Class == Subnormal) != (b.Class == Subnormal) {
		sc.Inc(result.Exponent, result.Exponent)
	}

	sc.Mul(a.Mantissa, b.Mantissa, result.Mantissa)

	shiftAmt := result.Desc.EffectiveMantissa() + RoundingBits
	sticky := sc.ShrI(result.Mantissa, shiftAmt, result.Mantissa)
	exact = exact && !sticky

	return Normalize(result, result, sticky, mode) && exact
}

// FDiv computes a/b into result, rounding with mode.
func FDiv(a, b, result *Value, mode RoundingMode) bool {
	exact := true
	if handleNaN(a, b, result) {
		return false
	}
	if result != a && result != b {
		result.Desc = a.Desc
	}

	resSign := a.Sign != b.Sign
	result.Sign = resSign

	if a.Class == Zero {
		if b.Class == Zero {
			GetQNaN(a.Desc, result)
			return false
		}
		result.CopyFrom(a)
		result.Sign = resSign
		return true
	}

	if b.Class == Inf {
		if a.Class == Inf {
			GetQNaN(a.Desc, result)
		} else {
			sc.Zero(result.Exponent)
			sc.Zero(result.Mantissa)
			result.Class = Zero
		}
		return false
	}

	if a.Class == Inf {
		result.CopyFrom(a)
		result.Sign = resSign
		return false
	}
	if b.Class == Zero {
		GetInf(a.Desc, result, result.Sign)
		return false
	}

	width := len(result.Mantissa)
	sc.Sub(a.Exponent, b.Exponent, result.Exponent)
	bias := sc.NewBuffer(width)
	sc.ValFromULong(uint64((uint(1)<<(a.Desc.ExponentSize-1))-2), bias)
	sc.Add(result.Exponent, bias, result.Exponent)

	if (a.Class == Subnormal) != (b.Class == Subnormal) {
		sc.Inc(result.Exponent, result.Exponent)
	}

	shiftAmt := result.Desc.EffectiveMantissa() + RoundingBits
	dividend := sc.NewBuffer(width)
	sc.ShlI(a.Mantissa, shiftAmt, dividend)
	divisor := sc.NewBuffer(width)
	sc.ShrI(b.Mantissa, 1, divisor)
	sticky := sc.Div(dividend, divisor, result.Mantissa)
	exact = exact && !sticky

	return Normalize(result, result, sticky, mode) && exact
}
