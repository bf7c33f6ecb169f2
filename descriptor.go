package fltcalc

import "github.com/yws/fltcalc/internal/fpval"

// Format describes a binary floating-point layout: exponent width, mantissa
// width, and whether the leading one is stored explicitly (x86 80-bit
// extended) or implied (everything else).
type Format = fpval.Descriptor

// Predefined formats for the IEEE binary interchange widths plus x86's
// 80-bit extended format, the four shapes spec.md's property tests exercise.
var (
	Binary16      = Format{ExponentSize: 5, MantissaSize: 10, ExplicitOne: 0}
	Binary32      = Format{ExponentSize: 8, MantissaSize: 23, ExplicitOne: 0}
	Binary64      = Format{ExponentSize: 11, MantissaSize: 52, ExplicitOne: 0}
	X86Extended80 = Format{ExponentSize: 15, MantissaSize: 64, ExplicitOne: 1}
)

// hostDescriptor is the format used for host float interop. Go only runs on
// hosts whose native double-precision float is IEEE binary64; the
// original's LDBL_MANT_DIG-driven #if/#elif/#error ladder (which also
// supported x86's 80-bit extended as a host long double) collapses to this
// one branch, since Go has no 80-bit extended host type. X86Extended80
// above remains fully usable as a *target* format for Cast/ValFromBytes/
// ValToBytes — only host interop (ValFromIEEE754/ValToIEEE754) is fixed.
func hostDescriptor() Format {
	return Binary64
}
