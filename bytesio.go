package fltcalc

import (
	"encoding/binary"

	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// ValFromBytes decodes buf, which must hold exactly format's packed
// encoding (mantissa, then biased exponent, then sign bit) in the given
// byte order, normalizing and classifying it with the engine's current
// rounding mode. order nil defaults to binary.LittleEndian, the engine's
// native packed layout.
func (e *Engine) ValFromBytes(buf []byte, format Format, order binary.ByteOrder) (*Value, error) {
	if order == nil {
		order = binary.LittleEndian
	}

	bits := format.PackedBits()
	if bits%8 != 0 {
		return nil, ErrNotMultipleOf8
	}
	nBytes := bits / 8
	if len(buf) != nBytes {
		return nil, &ErrBadWidth{Want: nBytes, Got: len(buf)}
	}

	work := buf
	if order == binary.BigEndian {
		work = reversedBytes(buf)
	}

	result, err := e.NewValue(format)
	if err != nil {
		return nil, err
	}
	fpval.FromBytes(work, format, result.v, e.RoundingMode())
	return result, nil
}

// ValToBytes encodes v into its format's packed byte representation in the
// given byte order. order nil defaults to binary.LittleEndian.
func (e *Engine) ValToBytes(v *Value, order binary.ByteOrder) ([]byte, error) {
	if order == nil {
		order = binary.LittleEndian
	}

	bits := v.v.Desc.PackedBits()
	if bits%8 != 0 {
		return nil, ErrNotMultipleOf8
	}

	packed := sc.NewBuffer(e.words)
	fpval.Pack(v.v, packed)

	out := make([]byte, bits/8)
	sc.ValToBytes(packed, out)
	if order == binary.BigEndian {
		out = reversedBytes(out)
	}
	return out, nil
}

func reversedBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
