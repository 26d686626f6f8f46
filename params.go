package xorshift

import (
	"fmt"
	"math"
)

// UniformParams describes a request for uniform values in [Low, High).
// The zero value is not the default request; start from DefaultUniformParams.
type UniformParams struct {
	Low  float64 // inclusive lower bound, default 0.0
	High float64 // exclusive upper bound, default 1.0
	Size int     // number of values, default 1
}

// DefaultUniformParams returns {Low: 0, High: 1, Size: 1}.
func DefaultUniformParams() UniformParams {
	return UniformParams{Low: 0.0, High: 1.0, Size: 1}
}

// BinomialParams describes a request for Binomial(N, P) samples.
type BinomialParams struct {
	N    int64   // number of trials
	P    float64 // success probability of a single trial
	Size int     // number of samples, default 1
}

// DefaultBinomialParams returns a request for a single Binomial(n, p) sample.
func DefaultBinomialParams(n int64, p float64) BinomialParams {
	return BinomialParams{N: n, P: p, Size: 1}
}

// Elements returns the number of elements of an array with the given shape.
// An empty shape describes a single element. Negative dimensions or an overflowing product yield ErrInvalidSize.
func Elements(shape ...int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension %d in shape %v", ErrInvalidSize, d, shape)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: shape %v has too many elements", ErrInvalidSize, shape)
		}
		n *= d
	}
	return n, nil
}
