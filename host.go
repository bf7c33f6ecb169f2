package fltcalc

import (
	"encoding/binary"
	"math"
	"strconv"
)

// ValFromIEEE754 converts a host float64 into format, going through
// hostDescriptor (binary64) and then Cast — the same two-step the original
// engine's fc_val_from_ieee754 performs via the host's long double.
func (e *Engine) ValFromIEEE754(f float64, format Format) (*Value, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(f))

	hostVal, err := e.ValFromBytes(buf, hostDescriptor(), binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	return e.Cast(hostVal, format)
}

// ValToIEEE754 converts v to a host float64, going through hostDescriptor
// and rounding with the engine's current rounding mode if v's format is
// wider than binary64.
func (e *Engine) ValToIEEE754(v *Value) (float64, error) {
	hostVal, err := e.Cast(v, hostDescriptor())
	if err != nil {
		return 0, err
	}
	buf, err := e.ValToBytes(hostVal, binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// ValFromString parses s as a decimal or hexadecimal floating-point literal
// (see strconv.ParseFloat) into format, the Go-native stand-in for the
// original's strtold-based fc_val_from_str (Go has no long double to parse
// into; float64 is the host's native width).
func (e *Engine) ValFromString(s string, format Format) (*Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return e.ValFromIEEE754(f, format)
}
