// Package fpval implements the tagged float value representation described
// by the engine: normalization, rounding, pack/unpack, format casting, the
// four arithmetic operations, and the constant builders. It is the direct
// analogue of fltcalc.c's fp_value and the functions operating on it, built
// on top of internal/sc the way the original built fp_value on strcalc.
//
// Every Value here carries its own Descriptor rather than relying on
// process-wide state for the format; Engine-level concerns (the global
// rounding mode, the exact flag, the scratch value) live one layer up, in
// the top-level fltcalc package, matching this spec's explicit allowance to
// keep that state in a single mutable handle rather than true globals.
package fpval

import "github.com/yws/fltcalc/internal/sc"

// ROUNDING_BITS in the original; kept as an exported constant since both
// this package and fltcalc need it to size buffers and interpret bit
// positions consistently.
const RoundingBits = 2

// Descriptor records the three format parameters of spec.md §3.
type Descriptor struct {
	ExponentSize uint
	MantissaSize uint
	ExplicitOne  uint // 0 or 1
}

// EffectiveMantissa is mantissa_size - explicit_one, the number of fraction
// bits that normalization must preserve below the canonical leading one.
func (d Descriptor) EffectiveMantissa() int {
	return int(d.MantissaSize) - int(d.ExplicitOne)
}

// Bias is the IEEE bias for this descriptor's exponent width.
func (d Descriptor) Bias() int {
	return (1 << (d.ExponentSize - 1)) - 1
}

// PackedBits is the total number of bits in this format's packed encoding.
func (d Descriptor) PackedBits() int {
	return 1 + int(d.ExponentSize) + int(d.MantissaSize)
}

// Class tags the kind of float value, mirroring value_class_t.
type Class int

const (
	Normal Class = iota
	Zero
	Subnormal
	Inf
	NaN
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Inf:
		return "inf"
	case NaN:
		return "nan"
	default:
		return "unknown"
	}
}

// RoundingMode selects how normalize rounds a value that doesn't fit
// exactly in its destination precision.
type RoundingMode int

const (
	ToNearest RoundingMode = iota
	ToPositive
	ToNegative
	ToZero
)

// Value is a tagged float: (descriptor, class, sign, exponent, mantissa).
// Exponent and Mantissa are fixed-width digit buffers (see internal/sc),
// both the same length for a given Value; that length is chosen once by
// whatever creates the Value (normally an Engine) and is never resized.
//
// The mantissa's radix point is fixed: a normalized value has its leading
// one at bit position EffectiveMantissa()+RoundingBits, i.e. EffectiveMantissa()
// fraction bits plus two extra rounding (guard/round) bits to the right.
type Value struct {
	Desc     Descriptor
	Class    Class
	Sign     bool
	Exponent []sc.Word
	Mantissa []sc.Word
}

// NewValue allocates a zeroed Value with exponent/mantissa buffers of the
// given Word length (the Engine's uniform value_size).
func NewValue(wordsPerBuffer int, desc Descriptor) *Value {
	return &Value{
		Desc:     desc,
		Exponent: sc.NewBuffer(wordsPerBuffer),
		Mantissa: sc.NewBuffer(wordsPerBuffer),
	}
}

// CopyFrom overwrites v with a copy of src's contents (descriptor, class,
// sign, exponent, mantissa), truncating or zero-extending the digit buffers
// to v's existing width.
func (v *Value) CopyFrom(src *Value) {
	if v == src {
		return
	}
	v.Desc = src.Desc
	v.Class = src.Class
	v.Sign = src.Sign
	sc.Copy(v.Exponent, src.Exponent)
	sc.Copy(v.Mantissa, src.Mantissa)
}

// Clone returns a new Value with the same width as v and a copy of its
// contents.
func (v *Value) Clone() *Value {
	out := NewValue(len(v.Exponent), v.Desc)
	out.CopyFrom(v)
	return out
}
