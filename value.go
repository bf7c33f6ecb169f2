package fltcalc

import (
	"fmt"

	"github.com/yws/fltcalc/internal/fpval"
)

// Value is a single tagged floating-point value in some Format, produced and
// consumed by an Engine. The zero Value is not usable; obtain one from
// Engine.NewValue or one of the Engine conversion methods.
type Value struct {
	v *fpval.Value
}

// Format reports v's descriptor.
func (v *Value) Format() Format { return v.v.Desc }

// IsZero reports whether v is positive or negative zero.
func (v *Value) IsZero() bool { return fpval.IsZero(v.v) }

// IsNegative reports v's sign bit, meaningful even for zero, infinity and
// NaN.
func (v *Value) IsNegative() bool { return fpval.IsNegative(v.v) }

// IsInf reports whether v is positive or negative infinity.
func (v *Value) IsInf() bool { return fpval.IsInf(v.v) }

// IsNaN reports whether v is quiet or signalling not-a-number.
func (v *Value) IsNaN() bool { return fpval.IsNaN(v.v) }

// IsSubnormal reports whether v is a subnormal (denormal) value.
func (v *Value) IsSubnormal() bool { return fpval.IsSubnormal(v.v) }

// IsQuietNaN reports whether v is a quiet NaN; only meaningful when
// IsNaN(v) is true.
func (v *Value) IsQuietNaN() bool { return fpval.IsQuietNaN(v.v) }

// Exponent returns v's unbiased exponent. Not meaningful for Zero, Inf or
// NaN.
func (v *Value) Exponent() int { return fpval.GetExponent(v.v) }

// CanLosslessConvTo reports whether v can be converted to dest without
// losing precision or range.
func (v *Value) CanLosslessConvTo(dest Format) bool {
	return fpval.CanLosslessConvTo(v.v, dest)
}

// Clone returns an independent copy of v.
func (v *Value) Clone() *Value {
	return &Value{v: v.v.Clone()}
}

// DebugString renders v's internal representation for debugging: class,
// sign, raw biased exponent and mantissa words in hex. Diagnostic only, not
// part of any documented wire format.
func (v *Value) DebugString() string {
	return fmt.Sprintf("Value{class=%s sign=%v exp=%#x mant=%#x unbiased_exp=%d}",
		v.v.Class, v.v.Sign, v.v.Exponent, v.v.Mantissa, fpval.GetExponent(v.v))
}

// Ordering is the result of comparing two Values.
type Ordering = fpval.Ordering

const (
	Less      = fpval.Less
	Equal     = fpval.Equal
	Greater   = fpval.Greater
	Unordered = fpval.Unordered
)

// Compare orders a and b, returning Unordered whenever either is NaN. Zero
// compares equal regardless of sign. a and b must share a Format (use
// Engine.Cast first otherwise); biased exponents are compared directly, so
// mixing formats silently compares the wrong thing.
func Compare(a, b *Value) Ordering {
	return fpval.Compare(a.v, b.v)
}
