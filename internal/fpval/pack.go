package fpval

import "github.com/yws/fltcalc/internal/sc"

// Pack writes value's IEEE-754-style packed encoding (mantissa fraction,
// then biased exponent, then sign bit, LSB-first) into packed, which must
// have the same width as value's own buffers. NaN and Inf are first
// canonicalized through GetQNaN/GetInf so that, e.g., every NaN packs to the
// same bit pattern regardless of how it arose.
func Pack(value *Value, packed []sc.Word) {
	v := value
	switch value.Class {
	case NaN:
		tmp := NewValue(len(packed), value.Desc)
		GetQNaN(value.Desc, tmp)
		v = tmp
	case Inf:
		tmp := NewValue(len(packed), value.Desc)
		GetInf(value.Desc, tmp, value.Sign)
		v = tmp
	}

	mantissaSize := int(v.Desc.MantissaSize)
	exponentSize := int(v.Desc.ExponentSize)

	sc.ShrI(v.Mantissa, RoundingBits, packed)
	sc.ZeroExtend(packed, mantissaSize)

	width := len(packed)
	temp := sc.NewBuffer(width)
	sc.ShlI(v.Exponent, mantissaSize, temp)
	sc.Or(packed, temp, packed)
	sc.ZeroExtend(packed, mantissaSize+exponentSize)

	if v.Sign {
		sc.SetBitAt(packed, mantissaSize+exponentSize)
	}
}

// FromBytes unpacks buf, which holds desc's packed encoding, into result and
// classifies/normalizes it, rounding subnormal-to-normal renormalization
// with mode (mode only matters for the Subnormal and Normal branches, which
// call Normalize; Zero, Inf and NaN are exact regardless of mode).
func FromBytes(buf []byte, desc Descriptor, result *Value, mode RoundingMode) {
	sc.Zero(result.Exponent)
	sc.Zero(result.Mantissa)
	result.Desc = desc

	mantissaSize := int(desc.MantissaSize)
	exponentSize := int(desc.ExponentSize)
	signBit := exponentSize + mantissaSize

	sc.ValFromBits(buf, 0, mantissaSize, result.Mantissa)
	sc.ValFromBits(buf, mantissaSize, mantissaSize+exponentSize, result.Exponent)
	result.Sign = buf[signBit/8]&(1<<uint(signBit%8)) != 0

	sc.ShlI(result.Mantissa, RoundingBits, result.Mantissa)

	width := len(result.Mantissa)
	totalBits := width * sc.WordBits

	switch {
	case sc.IsZero(result.Exponent, totalBits):
		if sc.IsZero(result.Mantissa, totalBits) {
			result.Class = Zero
		} else {
			result.Class = Subnormal
			sc.ShlI(result.Mantissa, 1, result.Mantissa)
			Normalize(result, result, false, mode)
		}
	case sc.IsAllOne(result.Exponent, exponentSize):
		size := mantissaSize + RoundingBits - int(desc.ExplicitOne)
		if sc.IsZero(result.Mantissa, size) {
			if desc.ExplicitOne == 0 {
				sc.SetBitAt(result.Mantissa, RoundingBits+mantissaSize)
			}
			result.Class = Inf
		} else {
			result.Class = NaN
		}
	default:
		result.Class = Normal
		if desc.ExplicitOne == 0 {
			sc.SetBitAt(result.Mantissa, RoundingBits+mantissaSize)
		}
		Normalize(result, result, false, mode)
	}
}
