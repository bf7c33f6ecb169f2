package fltcalc

import (
	"errors"
	"fmt"
)

// ErrPrecisionTooLow is returned by NewEngine when the requested precision
// cannot hold even a single guard bit alongside the rounding bits.
var ErrPrecisionTooLow = errors.New("fltcalc: requested precision too low")

// ErrFormatTooWide is returned when a Format's packed width exceeds the
// digit-buffer capacity an Engine was constructed with.
var ErrFormatTooWide = errors.New("fltcalc: format too wide for this engine")

// ErrNotMultipleOf8 is returned by ValToBytes/ValFromBytes when a format's
// packed bit width is not a whole number of bytes.
var ErrNotMultipleOf8 = errors.New("fltcalc: packed width is not a multiple of 8 bits")

// ErrBadBitWidth is returned when a requested integer conversion width is
// not positive.
var ErrBadBitWidth = errors.New("fltcalc: result bit width must be positive")

// ErrBadWidth is returned when a caller-supplied byte buffer doesn't match
// the width a format's packed encoding requires.
type ErrBadWidth struct {
	Want, Got int
}

func (e *ErrBadWidth) Error() string {
	return fmt.Sprintf("fltcalc: expected a %d-byte buffer, got %d", e.Want, e.Got)
}

// flt2intError wraps a non-OK Flt2IntResult as an error, so Flt2Int can
// return a single (result, error) pair the way the rest of this package's
// fallible operations do. The distinguished result appears only in the
// error's message.
type flt2intError struct {
	result Flt2IntResult
}

func (e *flt2intError) Error() string {
	return "fltcalc: flt2int: " + e.result.String()
}
