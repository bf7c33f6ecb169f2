package fltcalc

import (
	"strconv"

	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// Base selects the textual form Print renders.
type Base int

const (
	// DecBase renders a decimal scientific-notation string (30 digits after
	// the decimal point, arbitrary but matching the original's own choice).
	DecBase Base = iota
	// HexBase renders a hexadecimal floating-point string.
	HexBase
	// PackedBase renders the value's raw packed bit pattern in hex,
	// bypassing the Inf/NaN/Zero special cases the other two bases use.
	PackedBase
)

// Print renders v as text in the given base, going through the host
// float64 for DecBase and HexBase (so precision beyond float64 is lost in
// those two bases — PackedBase is the bit-exact form).
func (e *Engine) Print(v *Value, base Base) (string, error) {
	if base == PackedBase {
		packed := sc.NewBuffer(e.words)
		fpval.Pack(v.v, packed)
		return sc.Print(packed, v.v.Desc.PackedBits(), sc.Hex), nil
	}

	switch v.v.Class {
	case fpval.Inf:
		if v.v.Sign {
			return "-INF", nil
		}
		return "+INF", nil
	case fpval.NaN:
		return "NaN", nil
	case fpval.Zero:
		return "0.0", nil
	}

	f, err := e.ValToIEEE754(v)
	if err != nil {
		return "", err
	}
	if base == HexBase {
		return strconv.FormatFloat(f, 'x', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'E', 30, 64), nil
}
