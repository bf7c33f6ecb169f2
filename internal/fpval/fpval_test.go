package fpval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// binary32-shaped descriptor, used throughout since its bit widths are easy
// to reason about by hand.
var desc32 = fpval.Descriptor{ExponentSize: 8, MantissaSize: 23, ExplicitOne: 0}

const width = 2 // words per buffer, generous for a 32-bit format

func one(d fpval.Descriptor, sign bool) *fpval.Value {
	v := fpval.NewValue(width, d)
	v.Class = fpval.Normal
	v.Sign = sign
	sc.ValFromLong(int64(d.Bias()), v.Exponent)
	sc.SetBitAt(v.Mantissa, d.EffectiveMantissa()+fpval.RoundingBits)
	return v
}

func TestNormalizeAlreadyNormal(t *testing.T) {
	v := one(desc32, false)
	result := fpval.NewValue(width, desc32)
	exact := fpval.Normalize(v, result, false, fpval.ToNearest)
	assert.True(t, exact)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 0, fpval.GetExponent(result))
}

func TestNormalizeShiftsMantissaIntoPlace(t *testing.T) {
	v := fpval.NewValue(width, desc32)
	v.Class = fpval.Normal
	sc.ValFromLong(int64(desc32.Bias()), v.Exponent)
	// set a bit two positions above the canonical leading-one slot
	sc.SetBitAt(v.Mantissa, desc32.EffectiveMantissa()+fpval.RoundingBits+2)
	result := fpval.NewValue(width, desc32)
	exact := fpval.Normalize(v, result, false, fpval.ToNearest)
	assert.True(t, exact)
	assert.Equal(t, 2, fpval.GetExponent(result))
}

func TestFAddOnePlusOne(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, false)
	result := fpval.NewValue(width, desc32)
	exact := fpval.FAdd(a, b, result, fpval.ToNearest)
	require.True(t, exact)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 1, fpval.GetExponent(result))
	assert.False(t, result.Sign)
}

func TestFAddCancelsToZero(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, true)
	result := fpval.NewValue(width, desc32)
	fpval.FAdd(a, b, result, fpval.ToNearest)
	assert.Equal(t, fpval.Zero, result.Class)
}

func TestFMulOneTimesOne(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, false)
	result := fpval.NewValue(width, desc32)
	exact := fpval.FMul(a, b, result, fpval.ToNearest)
	assert.True(t, exact)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 0, fpval.GetExponent(result))
}

func TestFMulSignsXOR(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, true)
	result := fpval.NewValue(width, desc32)
	fpval.FMul(a, b, result, fpval.ToNearest)
	assert.True(t, result.Sign)
}

func TestFDivOneOverOne(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, false)
	result := fpval.NewValue(width, desc32)
	exact := fpval.FDiv(a, b, result, fpval.ToNearest)
	assert.True(t, exact)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 0, fpval.GetExponent(result))
}

func TestFDivByZeroGivesInf(t *testing.T) {
	a := one(desc32, false)
	zero := fpval.NewValue(width, desc32)
	zero.Class = fpval.Zero
	result := fpval.NewValue(width, desc32)
	exact := fpval.FDiv(a, zero, result, fpval.ToNearest)
	assert.False(t, exact)
	assert.Equal(t, fpval.Inf, result.Class)
	assert.False(t, result.Sign)
}

func TestFAddNaNPoisons(t *testing.T) {
	nan := fpval.NewValue(width, desc32)
	fpval.GetQNaN(desc32, nan)
	other := one(desc32, false)
	result := fpval.NewValue(width, desc32)
	exact := fpval.FAdd(nan, other, result, fpval.ToNearest)
	assert.False(t, exact)
	assert.Equal(t, fpval.NaN, result.Class)
}

func TestGetConstants(t *testing.T) {
	result := fpval.NewValue(width, desc32)

	fpval.GetInf(desc32, result, true)
	assert.Equal(t, fpval.Inf, result.Class)
	assert.True(t, result.Sign)

	fpval.GetQNaN(desc32, result)
	assert.Equal(t, fpval.NaN, result.Class)
	assert.True(t, fpval.IsQuietNaN(result))

	fpval.GetSNaN(desc32, result)
	assert.Equal(t, fpval.NaN, result.Class)
	assert.False(t, fpval.IsQuietNaN(result))

	fpval.GetMax(desc32, result, false)
	assert.Equal(t, fpval.Normal, result.Class)

	fpval.GetSmall(desc32, result)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 1-desc32.Bias(), fpval.GetExponent(result))

	fpval.GetEpsilon(desc32, result)
	assert.Equal(t, fpval.Normal, result.Class)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	v := one(desc32, false)
	packed := sc.NewBuffer(width)
	fpval.Pack(v, packed)

	buf := make([]byte, desc32.PackedBits()/8)
	sc.ValToBytes(packed, buf)

	result := fpval.NewValue(width, desc32)
	fpval.FromBytes(buf, desc32, result, fpval.ToNearest)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 0, fpval.GetExponent(result))
	assert.False(t, result.Sign)
}

func TestFromBytesZero(t *testing.T) {
	buf := make([]byte, desc32.PackedBits()/8)
	result := fpval.NewValue(width, desc32)
	fpval.FromBytes(buf, desc32, result, fpval.ToNearest)
	assert.Equal(t, fpval.Zero, result.Class)
}

func TestFromBytesInf(t *testing.T) {
	src := fpval.NewValue(width, desc32)
	fpval.GetInf(desc32, src, true)
	packed := sc.NewBuffer(width)
	fpval.Pack(src, packed)
	buf := make([]byte, desc32.PackedBits()/8)
	sc.ValToBytes(packed, buf)

	result := fpval.NewValue(width, desc32)
	fpval.FromBytes(buf, desc32, result, fpval.ToNearest)
	assert.Equal(t, fpval.Inf, result.Class)
	assert.True(t, result.Sign)
}

func TestCastWidensFormat(t *testing.T) {
	desc16 := fpval.Descriptor{ExponentSize: 5, MantissaSize: 10, ExplicitOne: 0}
	v := one(desc16, false)
	result := fpval.NewValue(width, desc32)
	fpval.Cast(v, desc32, result, fpval.ToNearest)
	assert.Equal(t, fpval.Normal, result.Class)
	assert.Equal(t, 0, fpval.GetExponent(result))
}

func TestCastPreservesNaNQuietness(t *testing.T) {
	desc16 := fpval.Descriptor{ExponentSize: 5, MantissaSize: 10, ExplicitOne: 0}
	snan := fpval.NewValue(width, desc16)
	fpval.GetSNaN(desc16, snan)
	result := fpval.NewValue(width, desc32)
	fpval.Cast(snan, desc32, result, fpval.ToNearest)
	assert.Equal(t, fpval.NaN, result.Class)
	assert.False(t, fpval.IsQuietNaN(result))
}

func TestCompareOrdersByMagnitudeAndSign(t *testing.T) {
	a := one(desc32, false)
	b := one(desc32, true)
	assert.Equal(t, fpval.Greater, fpval.Compare(a, b))
	assert.Equal(t, fpval.Less, fpval.Compare(b, a))
	assert.Equal(t, fpval.Equal, fpval.Compare(a, a))
}

func TestCompareZerosAreEqualRegardlessOfSign(t *testing.T) {
	posZero := fpval.NewValue(width, desc32)
	posZero.Class = fpval.Zero
	negZero := fpval.NewValue(width, desc32)
	negZero.Class = fpval.Zero
	negZero.Sign = true
	assert.Equal(t, fpval.Equal, fpval.Compare(posZero, negZero))
}

func TestCompareNaNIsUnordered(t *testing.T) {
	nan := fpval.NewValue(width, desc32)
	fpval.GetQNaN(desc32, nan)
	other := one(desc32, false)
	assert.Equal(t, fpval.Unordered, fpval.Compare(nan, other))
	assert.Equal(t, fpval.Unordered, fpval.Compare(nan, nan))
}

func TestTruncDropsFraction(t *testing.T) {
	// 1.5, built directly: exponent 0, mantissa = leading one plus the next bit
	v := fpval.NewValue(width, desc32)
	v.Class = fpval.Normal
	sc.ValFromLong(int64(desc32.Bias()), v.Exponent)
	sc.SetBitAt(v.Mantissa, desc32.EffectiveMantissa()+fpval.RoundingBits)
	sc.SetBitAt(v.Mantissa, desc32.EffectiveMantissa()+fpval.RoundingBits-1)

	result := fpval.NewValue(width, desc32)
	fpval.Trunc(v, result)
	assert.Equal(t, 0, fpval.GetExponent(result))
	assert.False(t, sc.GetBitAt(result.Mantissa, desc32.EffectiveMantissa()+fpval.RoundingBits-1))
}

func TestFlt2IntOfOne(t *testing.T) {
	v := one(desc32, false)
	result := sc.NewBuffer(width)
	res := fpval.Flt2Int(v, result, 32, true)
	assert.Equal(t, fpval.Flt2IntOK, res)
	assert.Equal(t, int64(1), sc.ValToLong(result))
}

func TestFlt2IntZero(t *testing.T) {
	zero := fpval.NewValue(width, desc32)
	zero.Class = fpval.Zero
	result := sc.NewBuffer(width)
	res := fpval.Flt2Int(zero, result, 32, true)
	assert.Equal(t, fpval.Flt2IntOK, res)
	assert.Equal(t, int64(0), sc.ValToLong(result))
}

func TestFlt2IntInfOverflows(t *testing.T) {
	inf := fpval.NewValue(width, desc32)
	fpval.GetInf(desc32, inf, false)
	result := sc.NewBuffer(width)
	res := fpval.Flt2Int(inf, result, 32, true)
	assert.Equal(t, fpval.Flt2IntPositiveOverflow, res)
}

func TestPredicates(t *testing.T) {
	v := one(desc32, false)
	assert.False(t, fpval.IsZero(v))
	assert.False(t, fpval.IsNegative(v))
	assert.False(t, fpval.IsInf(v))
	assert.False(t, fpval.IsNaN(v))
	assert.False(t, fpval.IsSubnormal(v))
	assert.True(t, fpval.CanLosslessConvTo(v, desc32))
}
