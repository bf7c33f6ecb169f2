package sc

import "strings"

// PrintBase selects the textual radix used by Print.
type PrintBase int

const (
	Hex PrintBase = iota
	Dec
)

// Print renders the low nBits bits of a as text in the given base. Hex
// output is zero-padded to ceil(nBits/4) digits, most significant digit
// first. Decimal output has no leading zeros (other than a single "0" for
// the zero value) and never carries a sign; a is always treated as
// unsigned, matching sc_print's use for packed byte dumps.
func Print(a []Word, nBits int, base PrintBase) string {
	switch base {
	case Dec:
		return printDecimal(a, nBits)
	default:
		return printHex(a, nBits)
	}
}

func printHex(a []Word, nBits int) string {
	digits := (nBits + 3) / 4
	if digits == 0 {
		digits = 1
	}
	var sb strings.Builder
	for i := digits - 1; i >= 0; i-- {
		nibble := byte(0)
		for b := 0; b < 4; b++ {
			bitIdx := i*4 + b
			if bitIdx < nBits && GetBitAt(a, bitIdx) {
				nibble |= 1 << uint(b)
			}
		}
		sb.WriteByte("0123456789ABCDEF"[nibble])
	}
	return sb.String()
}

func printDecimal(a []Word, nBits int) string {
	width := len(a)
	if width == 0 {
		width = 1
	}
	val := NewBuffer(width)
	Copy(val, a)
	ZeroExtend(val, nBits)
	if IsZero(val, nBits) {
		return "0"
	}

	ten := NewBuffer(width)
	ValFromULong(10, ten)

	var digits []byte
	quotient := NewBuffer(width)
	for !IsZero(val, width*WordBits) {
		Div(val, ten, quotient)
		// remainder = val - quotient*ten
		prod := NewBuffer(width)
		Mul(quotient, ten, prod)
		rem := NewBuffer(width)
		Sub(val, prod, rem)
		digits = append(digits, byte('0')+byte(ValToULong(rem)))
		Copy(val, quotient)
	}
	// digits were produced least-significant first
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d
	}
	return string(out)
}
