package fltcalc

import "github.com/yws/fltcalc/internal/fpval"

// RoundingMode selects how an inexact result is rounded to fit its format.
type RoundingMode = fpval.RoundingMode

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest = fpval.ToNearest
	// ToPositive rounds toward positive infinity.
	ToPositive = fpval.ToPositive
	// ToNegative rounds toward negative infinity.
	ToNegative = fpval.ToNegative
	// ToZero truncates toward zero.
	ToZero = fpval.ToZero
)
