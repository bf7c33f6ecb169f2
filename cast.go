package fltcalc

import "github.com/yws/fltcalc/internal/fpval"

// Cast converts v to dest's format, rounding with the engine's current
// rounding mode. NaN casts preserve quiet/signalling status; infinities
// preserve sign; finite values are re-biased and renormalized.
func (e *Engine) Cast(v *Value, dest Format) (*Value, error) {
	result, err := e.NewValue(dest)
	if err != nil {
		return nil, err
	}
	fpval.Cast(v.v, dest, result.v, e.RoundingMode())
	return result, nil
}
