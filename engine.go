package fltcalc

import (
	"sync"

	"github.com/yws/fltcalc/internal/fpval"
	"github.com/yws/fltcalc/internal/sc"
)

// Engine is a floating-point calculation context: a fixed digit-buffer
// width (sized from the requested precision), the current rounding mode,
// whether the most recent operation was exact, and a scratch Value (see
// ScratchValue). This is the direct analogue
// of fltcalc.c's calc_buffer/rounding_mode/fc_exact globals, scoped to an
// instance instead of the process; an *Engine is not safe for concurrent
// use, matching the original's single-threaded design.
type Engine struct {
	mu        sync.Mutex
	words     int
	precision uint
	mode      RoundingMode
	exact     bool
	scratch   *Value
}

// NewEngine constructs an Engine whose digit buffers can hold precision bits
// of mantissa plus rounding and sign-extension headroom, with room for the
// double-width mantissa products and shifted dividends of Mul and Div.
// precision 0 means "default to 64", enough for every predefined Format
// including X86Extended80.
func NewEngine(precision uint) (*Engine, error) {
	if precision == 0 {
		precision = 64
	}
	if precision < 2 {
		return nil, ErrPrecisionTooLow
	}

	// +RoundingBits for guard/round, +1 for the explicit/implicit leading
	// one, doubled so a mantissa product (or a dividend shifted left by a
	// mantissa width) fits, +32 headroom so signed exponent arithmetic (two's
	// complement deltas, bias subtraction) never overflows the buffer width.
	neededBits := 2*(precision+1+fpval.RoundingBits) + 32
	words := int((neededBits + sc.WordBits - 1) / sc.WordBits)
	if words < 4 {
		words = 4
	}

	e := &Engine{
		words:     words,
		precision: precision,
		mode:      ToNearest,
	}
	e.scratch = e.newValueUnchecked(Binary64)
	return e, nil
}

// RoundingMode returns the engine's current rounding mode.
func (e *Engine) RoundingMode() RoundingMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetRoundingMode changes the engine's rounding mode and returns the
// previous one.
func (e *Engine) SetRoundingMode(mode RoundingMode) RoundingMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.mode
	e.mode = mode
	return prev
}

// IsExact reports whether the most recent arithmetic operation performed by
// this engine lost no precision.
func (e *Engine) IsExact() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exact
}

// ScratchValue returns the engine's scratch Value, a zeroed Binary64 Value
// allocated by NewEngine, the analogue of fc_get_buffer's result in the
// original. No Engine operation writes to it: every operation returns a
// newly allocated Value.
func (e *Engine) ScratchValue() *Value {
	return e.scratch
}

func (e *Engine) setExact(exact bool) bool {
	e.mu.Lock()
	e.exact = exact
	e.mu.Unlock()
	return exact
}

func (e *Engine) newValueUnchecked(format Format) *Value {
	return &Value{v: fpval.NewValue(e.words, format)}
}

// NewValue allocates a zeroed Value (Class Normal, all-zero exponent and
// mantissa — callers normally fill it via one of the engine's conversion
// methods) in the given format.
func (e *Engine) NewValue(format Format) (*Value, error) {
	if format.PackedBits() > e.words*sc.WordBits {
		return nil, ErrFormatTooWide
	}
	return e.newValueUnchecked(format), nil
}
