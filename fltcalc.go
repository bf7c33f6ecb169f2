// Package fltcalc implements a soft floating-point engine: arbitrary-width
// IEEE-754-like arithmetic over an explicit format descriptor (exponent
// width, mantissa width, whether the leading one is stored explicitly),
// with the four standard rounding modes, subnormals, signed zero, infinities
// and quiet/signalling NaN, and bit-exact conversion to and from a target
// format's packed byte encoding.
//
// An Engine holds the process-wide state the underlying algorithm needs —
// the current rounding mode, whether the last operation was exact, and a
// scratch Value — and is the entry point for every operation in this
// package; Values themselves are inert data produced and consumed by an
// Engine. This mirrors fltcalc.c's global calc_buffer/rounding_mode/fc_exact
// triple, made explicit and instance-scoped instead of living in process
// globals, but the same single-writer-at-a-time contract applies: an Engine
// is not safe for concurrent use without external synchronization.
package fltcalc
