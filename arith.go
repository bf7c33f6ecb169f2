package fltcalc

import (
	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// Add computes a+b, rounding with the engine's current rounding mode.
// a and b must share a Format.
func (e *Engine) Add(a, b *Value) *Value {
	result := e.newValueUnchecked(a.v.Desc)
	mode := e.RoundingMode()

	var exact bool
	if sc.Comp(a.v.Exponent, b.v.Exponent) == sc.Less {
		exact = fpval.FAdd(b.v, a.v, result.v, mode)
	} else {
		exact = fpval.FAdd(a.v, b.v, result.v, mode)
	}
	e.setExact(exact)
	return result
}

// Sub computes a-b as Add(a, -b), matching the original engine's convention
// that subtraction is addition of a sign-flipped copy.
func (e *Engine) Sub(a, b *Value) *Value {
	negB := b.v.Clone()
	negB.Sign = !negB.Sign

	result := e.newValueUnchecked(a.v.Desc)
	mode := e.RoundingMode()

	var exact bool
	if sc.Comp(a.v.Exponent, negB.Exponent) == sc.Less {
		exact = fpval.FAdd(negB, a.v, result.v, mode)
	} else {
		exact = fpval.FAdd(a.v, negB, result.v, mode)
	}
	e.setExact(exact)
	return result
}

// Mul computes a*b, rounding with the engine's current rounding mode.
func (e *Engine) Mul(a, b *Value) *Value {
	result := e.newValueUnchecked(a.v.Desc)
	exact := fpval.FMul(a.v, b.v, result.v, e.RoundingMode())
	e.setExact(exact)
	return result
}

// Div computes a/b, rounding with the engine's current rounding mode.
func (e *Engine) Div(a, b *Value) *Value {
	result := e.newValueUnchecked(a.v.Desc)
	exact := fpval.FDiv(a.v, b.v, result.v, e.RoundingMode())
	e.setExact(exact)
	return result
}

// Neg returns a copy of a with its sign bit flipped.
func (e *Engine) Neg(a *Value) *Value {
	result := a.Clone()
	result.v.Sign = !result.v.Sign
	return result
}

// Int truncates a's fractional part toward zero, without clipping to any
// integer range. Always marks the result as inexact, matching fc_int's
// conservative fc_exact handling.
func (e *Engine) Int(a *Value) *Value {
	result := e.newValueUnchecked(a.v.Desc)
	fpval.Trunc(a.v, result.v)
	e.setExact(false)
	return result
}
