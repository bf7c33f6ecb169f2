package fpval

import "github.com/yws/fltcalc/internal/sc"

// Normalize brings inVal's mantissa to the canonical normalized position
// (leading one at bit EffectiveMantissa()+RoundingBits), rounds according to
// mode, and writes the result to outVal (which may alias inVal; every call
// site in this package does alias them). sticky carries bits already lost
// upstream of the mantissa (e.g. by a prior alignment shift in FAdd).
//
// It returns exact, true iff no precision was lost performing this call —
// neither the shift to normalize nor the rounding step discarded a set bit.
//
// This function is a direct translation of fltcalc.c's normalize(), which
// every caller in the original also invokes with in_val == out_val.
func Normalize(inVal, outVal *Value, sticky bool, mode RoundingMode) bool {
	desc := inVal.Desc
	effMant := desc.EffectiveMantissa()
	width := len(outVal.Mantissa)
	totalBits := width * sc.WordBits

	hsb := RoundingBits + effMant - sc.GetHighestSetBit(inVal.Mantissa) - 1

	if outVal != inVal {
		outVal.Sign = inVal.Sign
		outVal.Desc = inVal.Desc
	}
	outVal.Class = Normal

	if hsb == RoundingBits+effMant {
		// mantissa is entirely zero
		sc.Zero(outVal.Exponent)
		hsb = -1
	}

	exact := true
	switch {
	case hsb < -1:
		shiftAmt := -hsb - 1
		carry := sc.ShrI(inVal.Mantissa, shiftAmt, outVal.Mantissa)
		if carry {
			exact = false
			sticky = true
		}
		delta := sc.NewBuffer(width)
		sc.ValFromULong(uint64(shiftAmt), delta)
		sc.Add(inVal.Exponent, delta, outVal.Exponent)
	case hsb > -1:
		shiftAmt := hsb + 1
		sc.ShlI(inVal.Mantissa, shiftAmt, outVal.Mantissa)
		delta := sc.NewBuffer(width)
		sc.ValFromULong(uint64(shiftAmt), delta)
		sc.Sub(inVal.Exponent, delta, outVal.Exponent)
	default:
		if outVal != inVal {
			sc.Copy(outVal.Mantissa, inVal.Mantissa)
			sc.Copy(outVal.Exponent, inVal.Exponent)
		}
	}

	// exponent underflow: shift the mantissa right until the exponent is zero
	if sc.IsNegative(outVal.Exponent) || sc.IsZero(outVal.Exponent, totalBits) {
		shiftAmt := int(1 - sc.ValToLong(outVal.Exponent))
		carry := sc.ShrI(outVal.Mantissa, shiftAmt, outVal.Mantissa)
		if carry {
			exact = false
			sticky = true
		}
		sc.Zero(outVal.Exponent)
		outVal.Class = Subnormal
	}

	// round: extract guard/round/lsb-above bits just below the kept mantissa
	bits3 := sc.SubBits(outVal.Mantissa, effMant+RoundingBits, 0) & 0x7
	guard := int((bits3 & 0x2) >> 1)
	round := int(bits3 & 0x1)
	lsbAbove := int(bits3 >> 2)

	var roundUp bool
	switch mode {
	case ToNearest:
		roundUp = guard != 0 && (sticky || round != 0 || lsbAbove != 0)
	case ToPositive:
		roundUp = !outVal.Sign && (guard != 0 || round != 0 || sticky)
	case ToNegative:
		roundUp = outVal.Sign && (guard != 0 || round != 0 || sticky)
	case ToZero:
		roundUp = false
	}

	var addend int
	if roundUp {
		g := (round ^ guard) << 1
		keepZero := 0
		if round == 0 && g == 0 {
			keepZero = 1
		}
		addend = keepZero<<2 | g | round
	} else {
		addend = -((guard << 1) | round)
	}
	if addend != 0 {
		delta := sc.NewBuffer(width)
		sc.ValFromLong(int64(addend), delta)
		sc.Add(outVal.Mantissa, delta, outVal.Mantissa)
		exact = false
	}

	// rounding down to zero from a subnormal stays a true zero
	if sc.IsZero(outVal.Mantissa, totalBits) && outVal.Class == Subnormal {
		outVal.Class = Zero
	}

	// post-round renormalization
	hsb = RoundingBits + effMant - sc.GetHighestSetBit(outVal.Mantissa) - 1
	switch {
	case outVal.Class != Subnormal && hsb < -1:
		carry := sc.ShrI(outVal.Mantissa, 1, outVal.Mantissa)
		if carry {
			exact = false
		}
		sc.Inc(outVal.Exponent, outVal.Exponent)
	case outVal.Class == Subnormal && hsb == -1:
		sc.Inc(outVal.Exponent, outVal.Exponent)
		outVal.Class = Normal
	}

	// exponent overflow
	maxExp := sc.NewBuffer(width)
	sc.ValFromULong(uint64((uint(1)<<desc.ExponentSize)-1), maxExp)
	if sc.Comp(outVal.Exponent, maxExp) != sc.Less {
		switch mode {
		case ToNearest:
			setInf(outVal, outVal.Sign)
		case ToPositive:
			if !outVal.Sign {
				setInf(outVal, false)
			} else {
				setMax(outVal, true)
			}
		case ToNegative:
			if outVal.Sign {
				setInf(outVal, true)
			} else {
				setMax(outVal, false)
			}
		case ToZero:
			setMax(outVal, outVal.Sign)
		}
	}

	return exact
}

func setInf(v *Value, sign bool) {
	GetInf(v.Desc, v, sign)
}

func setMax(v *Value, sign bool) {
	GetMax(v.Desc, v, sign)
}
