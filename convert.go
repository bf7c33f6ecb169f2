package fltcalc

import (
	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// Flt2IntResult reports the outcome of Flt2Int.
type Flt2IntResult = fpval.Flt2IntResult

const (
	Flt2IntOK               = fpval.Flt2IntOK
	Flt2IntPositiveOverflow = fpval.Flt2IntPositiveOverflow
	Flt2IntNegativeOverflow = fpval.Flt2IntNegativeOverflow
	Flt2IntBad              = fpval.Flt2IntBad
)

// Flt2Int converts a, which must already be an integral value (see Int), to
// a resultBits-wide two's complement integer, returned little-endian as
// ceil(resultBits/8) bytes. a must not be NaN or Subnormal, and a negative a
// is rejected unless resultSigned; both conditions, and range overflow,
// surface as a non-nil error whose message names the corresponding
// Flt2IntResult. The error's type is unexported and has no accessor, so the
// Flt2IntResult value itself is not recoverable from it with errors.As.
func (e *Engine) Flt2Int(a *Value, resultBits int, resultSigned bool) ([]byte, error) {
	if resultBits <= 0 {
		return nil, ErrBadBitWidth
	}

	buf := sc.NewBuffer(e.words)
	res := fpval.Flt2Int(a.v, buf, resultBits, resultSigned)
	if res != fpval.Flt2IntOK {
		return nil, &flt2intError{result: res}
	}

	out := make([]byte, (resultBits+7)/8)
	sc.ValToBytes(buf, out)
	return out, nil
}
