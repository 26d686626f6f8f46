package xorshift

import (
	"fmt"
	"math"
)

// twoPowMinus53 is the spacing of the 53-bit grid used by Float64FromBits.
const twoPowMinus53 = 1.0 / (1 << 53)

// Float64FromBits maps a raw 64-bit word to a float64 in [0.0, 1.0).
// It takes the upper 53 bits, the full precision of the float64 significand, and divides them by 2^53.
// All 2^53 results are equally likely and equally spaced.
// This function will never return -0.0, 1.0, NaN or Inf.
// The lower 11 bits are discarded, which also hides the weak low bits of the xo*128+ generators.
func Float64FromBits(x uint64) float64 {
	return float64(x>>11) * twoPowMinus53
}

// fillUniform writes one uniform [0,1) value per element of out, consuming one raw word each.
func fillUniform[E bitSource](e E, out []float64) {
	for i := range out {
		out[i] = Float64FromBits(e.Uint64())
	}
}

// scaleInPlace maps [0,1) values to [low,high). The multiplication is skipped for unit
// width and the translation for low == 0; both are shortcuts, the result is the same.
// Rounding may push a value onto high, such values are moved to the largest float below high.
func scaleInPlace(vs []float64, low, high float64) {
	width := high - low
	if width == 1.0 && low == 0.0 {
		return
	}
	if width == 0.0 {
		for i := range vs {
			vs[i] = low
		}
		return
	}
	below := math.Nextafter(high, math.Inf(-1))
	for i, v := range vs {
		if width != 1.0 {
			v *= width
		}
		if low != 0.0 {
			v += low
		}
		if v >= high {
			v = below
		}
		vs[i] = v
	}
}

func checkRange(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return fmt.Errorf("%w: bounds must be finite, got low=%v high=%v", ErrInvalidParameter, low, high)
	}
	if high < low {
		return fmt.Errorf("%w: high (%v) must not be less than low (%v)", ErrInvalidParameter, high, low)
	}
	if math.IsInf(high-low, 0) {
		return fmt.Errorf("%w: interval [%v,%v) is too wide", ErrInvalidParameter, low, high)
	}
	return nil
}

func checkSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d elements requested", ErrInvalidSize, n)
	}
	return nil
}
