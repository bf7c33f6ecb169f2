package fpval

import "github.com/yws/fltcalc/internal/sc"

// GetMax writes the largest finite value representable by desc, with the
// given sign, into result and returns it.
func GetMax(desc Descriptor, result *Value, sign bool) *Value {
	result.Desc = desc
	result.Class = Normal
	result.Sign = sign
	sc.ValFromULong(uint64((uint(1)<<desc.ExponentSize)-2), result.Exponent)
	sc.MaxFromBits(int(desc.MantissaSize)+1-int(desc.ExplicitOne), false, result.Mantissa)
	sc.ShlI(result.Mantissa, RoundingBits, result.Mantissa)
	return result
}

// GetSmall writes the smallest positive normal value representable by desc
// (exponent 1, mantissa exactly the implicit/explicit one) into result.
func GetSmall(desc Descriptor, result *Value) *Value {
	result.Desc = desc
	result.Class = Normal
	result.Sign = false
	sc.ValFromULong(1, result.Exponent)
	sc.Zero(result.Mantissa)
	sc.SetBitAt(result.Mantissa, desc.EffectiveMantissa()+RoundingBits)
	return result
}

// GetEpsilon writes the ULP of 1.0 for desc into result.
func GetEpsilon(desc Descriptor, result *Value) *Value {
	result.Desc = desc
	result.Class = Normal
	result.Sign = false
	effMant := desc.EffectiveMantissa()
	sc.ValFromLong(int64(desc.Bias()-effMant), result.Exponent)
	sc.Zero(result.Mantissa)
	sc.SetBitAt(result.Mantissa, effMant+RoundingBits)
	return result
}

// GetSNaN writes the canonical signalling NaN for desc into result.
func GetSNaN(desc Descriptor, result *Value) *Value {
	result.Desc = desc
	result.Class = NaN
	result.Sign = false
	sc.MaxFromBits(int(desc.ExponentSize), false, result.Exponent)
	sc.Zero(result.Mantissa)
	if desc.ExplicitOne == 1 {
		sc.SetBitAt(result.Mantissa, int(desc.MantissaSize)+RoundingBits-1)
		sc.SetBitAt(result.Mantissa, int(desc.MantissaSize)+RoundingBits-3)
	}
	return result
}

// GetQNaN writes the canonical quiet NaN for desc into result.
func GetQNaN(desc Descriptor, result *Value) *Value {
	result.Desc = desc
	result.Class = NaN
	result.Sign = false
	sc.MaxFromBits(int(desc.ExponentSize), false, result.Exponent)
	sc.Zero(result.Mantissa)
	sc.SetBitAt(result.Mantissa, int(desc.MantissaSize)+RoundingBits-1)
	if desc.ExplicitOne == 1 {
		sc.SetBitAt(result.Mantissa, int(desc.MantissaSize)+RoundingBits-2)
	}
	return result
}

// GetInf writes signed infinity for desc into result.
func GetInf(desc Descriptor, result *Value, sign bool) *Value {
	result.Desc = desc
	result.Class = Inf
	result.Sign = sign
	sc.MaxFromBits(int(desc.ExponentSize), false, result.Exponent)
	sc.Zero(result.Mantissa)
	sc.SetBitAt(result.Mantissa, desc.EffectiveMantissa()+RoundingBits)
	return result
}

// IsQuietNaN reports whether v, which must be of Class NaN, is a quiet NaN:
// whether the most significant fraction bit is set. That is packed bit
// mantissa_size-1 when the leading one is implicit and mantissa_size-2 when
// it is explicit, offset by RoundingBits in the internal mantissa — the same
// bit GetQNaN sets and GetSNaN leaves clear.
func IsQuietNaN(v *Value) bool {
	if v.Desc.ExplicitOne == 0 {
		return sc.GetBitAt(v.Mantissa, int(v.Desc.MantissaSize)+RoundingBits-1)
	}
	return sc.GetBitAt(v.Mantissa, int(v.Desc.MantissaSize)+RoundingBits-2)
}
