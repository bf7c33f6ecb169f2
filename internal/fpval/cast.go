package fpval

import "github.com/yws/fltcalc/internal/sc"

// Cast converts value, which must not alias result, to dest's format,
// rounding with mode. NaN casts preserve quiet/signalling via IsQuietNaN;
// Inf casts preserve sign; finite values are re-biased and renormalized.
func Cast(value *Value, dest Descriptor, result *Value, mode RoundingMode) {
	desc := value.Desc
	if desc.ExponentSize == dest.ExponentSize &&
		desc.MantissaSize == dest.MantissaSize &&
		desc.ExplicitOne == dest.ExplicitOne {
		if value != result {
			result.CopyFrom(value)
		}
		return
	}

	if value.Class == NaN {
		if IsQuietNaN(value) {
			GetQNaN(dest, result)
		} else {
			GetSNaN(dest, result)
		}
		return
	}
	if value.Class == Inf {
		GetInf(dest, result, value.Sign)
		return
	}

	result.Desc = dest
	result.Class = value.Class
	result.Sign = value.Sign

	valBias := desc.Bias()
	resBias := dest.Bias()
	expOffset := resBias - valBias
	expOffset += dest.EffectiveMantissa() - desc.EffectiveMantissa()

	width := len(result.Exponent)
	temp := sc.NewBuffer(width)
	sc.ValFromLong(int64(expOffset), temp)
	sc.Add(value.Exponent, temp, result.Exponent)

	if value.Class == Subnormal {
		sc.ShlI(value.Mantissa, 1, result.Mantissa)
	} else if value != result {
		sc.Copy(result.Mantissa, value.Mantissa)
	}

	Normalize(result, result, false, mode)
}
