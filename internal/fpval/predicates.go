package fpval

import "github.com/yws/fltcalc/internal/sc"

func IsZero(v *Value) bool      { return v.Class == Zero }
func IsNegative(v *Value) bool  { return v.Sign }
func IsInf(v *Value) bool       { return v.Class == Inf }
func IsNaN(v *Value) bool       { return v.Class == NaN }
func IsSubnormal(v *Value) bool { return v.Class == Subnormal }

// ZeroMantissa reports whether every mantissa bit below the leading one
// (the fraction bits and the rounding bits) is zero.
func ZeroMantissa(v *Value) bool {
	size := int(v.Desc.MantissaSize) + RoundingBits - int(v.Desc.ExplicitOne)
	return sc.IsZero(v.Mantissa, size)
}

// GetExponent returns v's unbiased exponent.
func GetExponent(v *Value) int {
	return int(sc.ValToLong(v.Exponent)) - v.Desc.Bias()
}

// CanLosslessConvTo reports whether v can be converted to desc without
// losing precision or range. Zero, Inf and NaN always can.
func CanLosslessConvTo(v *Value, desc Descriptor) bool {
	switch v.Class {
	case Zero, Inf, NaN:
		return true
	}

	expBias := desc.Bias()
	biased := GetExponent(v) + expBias
	if !(0 < biased && biased < (1<<desc.ExponentSize)-1) {
		return false
	}

	needed := v.Desc.EffectiveMantissa() + RoundingBits - sc.GetLowestSetBit(v.Mantissa)
	return needed <= desc.EffectiveMantissa()
}
