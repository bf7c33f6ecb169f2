package fltcalc

import "github.com/x448/float16"

// ValFromFloat16 converts the IEEE binary16 bit pattern bits into format,
// via float16 and the host float64 pipeline (both widening steps are
// exact, so this loses nothing beyond what casting down to format itself
// would). Go has no native float16 type; this is the host-interop
// counterpart to ValFromIEEE754 for the one common width math doesn't cover.
func (e *Engine) ValFromFloat16(bits uint16, format Format) (*Value, error) {
	f32 := float16.Frombits(bits).Float32()
	return e.ValFromIEEE754(float64(f32), format)
}

// ValToFloat16 converts v to an IEEE binary16 bit pattern via the host
// float64. Only the step to float64 (for formats wider than binary64) uses
// the engine's rounding mode; the narrowing from float64 to float32 and then
// to binary16 rounds to nearest even regardless of it.
func (e *Engine) ValToFloat16(v *Value) (uint16, error) {
	f, err := e.ValToIEEE754(v)
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(float32(f)).Bits(), nil
}
