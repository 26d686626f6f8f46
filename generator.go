package xorshift

import (
	"fmt"
	"strings"
)

// Algorithm selects the bit engine of a Generator.
type Algorithm uint8

const (
	// Xoroshiro128Plus selects xoroshiro128+ (55, 14, 36).
	Xoroshiro128Plus Algorithm = iota
	// Xorshift128Plus selects xorshift128+ (23, 18, 5).
	Xorshift128Plus
)

func (a Algorithm) String() string {
	switch a {
	case Xoroshiro128Plus:
		return "xoroshiro128+"
	case Xorshift128Plus:
		return "xorshift128+"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm accepts the names returned by Algorithm.String, with or without the trailing "+"
// and "plus" spelled out, case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "+"), "plus")
	switch name {
	case "xoroshiro128", "xoroshiro":
		return Xoroshiro128Plus, nil
	case "xorshift128", "xorshift":
		return Xorshift128Plus, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, s)
}

// Generator produces bulk uniform and binomial samples from one of the two engines.
// This random number generator is deterministic in the sequence of numbers it generates for a given seed and Algorithm.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe: it uses no locks. Use one instance per goroutine, see NewStreams.
// The slices returned in View mode belong to the Generator and are overwritten by the next call of the same kind.
type Generator struct {
	alg Algorithm
	xs  Xorshift128PlusEngine
	xo  Xoroshiro128PlusEngine

	floats buffer[float64]
	ints   buffer[int64]
}

// New creates a Generator. Without a seed it is seeded from operating system entropy.
// One seed value (0 included) makes the generator reproducible; several seed values are folded into one.
// New panics on an unknown Algorithm.
func New(alg Algorithm, mode CopyMode, seed ...uint64) *Generator {
	var s uint64
	if len(seed) == 0 {
		s = processEntropy.Uint64()
	} else {
		s = foldSeeds(seed)
	}
	return newGenerator(alg, mode, s)
}

// NewFromBytes creates a reproducible Generator from an opaque byte seed, see SeedFromBytes.
func NewFromBytes(alg Algorithm, mode CopyMode, seed []byte) *Generator {
	return newGenerator(alg, mode, SeedFromBytes(seed))
}

// NewStreams creates k generators for parallel use. All of them start from the same seeded state;
// generator i is advanced by i jumps of 2^64 steps, so their sequences do not overlap for
// less than 2^64 draws each.
func NewStreams(alg Algorithm, mode CopyMode, k int, seed ...uint64) ([]*Generator, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d streams requested", ErrInvalidSize, k)
	}
	streams := make([]*Generator, k)
	if k == 0 {
		return streams, nil
	}
	streams[0] = New(alg, mode, seed...)
	for i := 1; i < k; i++ {
		g := &Generator{
			alg:    alg,
			xs:     streams[i-1].xs,
			xo:     streams[i-1].xo,
			floats: buffer[float64]{mode: mode},
			ints:   buffer[int64]{mode: mode},
		}
		g.Jump()
		streams[i] = g
	}
	return streams, nil
}

func newGenerator(alg Algorithm, mode CopyMode, seed uint64) *Generator {
	g := &Generator{
		alg:    alg,
		floats: buffer[float64]{mode: mode},
		ints:   buffer[int64]{mode: mode},
	}
	switch alg {
	case Xorshift128Plus:
		g.xs.State = seedState(seed)
	case Xoroshiro128Plus:
		g.xo.State = seedState(seed)
	default:
		panic(fmt.Sprintf("xorshift: unknown algorithm %d", uint8(alg)))
	}
	return g
}

// Algorithm returns the engine the Generator was created with.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Mode returns the CopyMode the Generator was created with.
func (g *Generator) Mode() CopyMode {
	return g.floats.mode
}

// State returns a copy of the engine state.
func (g *Generator) State() [2]uint64 {
	if g.alg == Xorshift128Plus {
		return g.xs.State
	}
	return g.xo.State
}

// Uint64 returns the next raw word of the engine.
func (g *Generator) Uint64() uint64 {
	if g.alg == Xorshift128Plus {
		return g.xs.Uint64()
	}
	return g.xo.Uint64()
}

// Float64 returns a single uniform value in [0.0, 1.0). It consumes the same raw word
// that the next element of Uniform would have used.
func (g *Generator) Float64() float64 {
	return Float64FromBits(g.Uint64())
}

// Jump advances the engine by 2^64 steps.
func (g *Generator) Jump() {
	if g.alg == Xorshift128Plus {
		g.xs.Jump()
		return
	}
	g.xo.Jump()
}

// Uniform returns n values uniformly distributed in [0.0, 1.0).
// Every value consumes exactly one raw word.
// A negative n yields ErrInvalidSize; neither the state nor the buffer is touched then.
func (g *Generator) Uniform(n int) ([]float64, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	out := g.floats.acquire(n)
	switch g.alg {
	case Xorshift128Plus:
		fillUniform(&g.xs, out)
	default:
		fillUniform(&g.xo, out)
	}
	return g.floats.present(), nil
}

// UniformRange returns p.Size values uniformly distributed in [p.Low, p.High).
// Equal bounds yield p.Size copies of p.Low.
func (g *Generator) UniformRange(p UniformParams) ([]float64, error) {
	if err := checkSize(p.Size); err != nil {
		return nil, err
	}
	if err := checkRange(p.Low, p.High); err != nil {
		return nil, err
	}
	out, err := g.Uniform(p.Size)
	if err != nil {
		return nil, err
	}
	scaleInPlace(out, p.Low, p.High)
	return out, nil
}

// Binomial returns n samples of the number of successes in trials independent
// experiments with success probability p each. All samples are in [0, trials].
//
// Sampling strategy:
//   - trials == 0, p == 0 or p == 1: the constant result, no raw words are consumed.
//   - trials <= 16: the successes of trials uniform comparisons are counted.
//   - trials*min(p,1-p) <= 30: inversion of the cumulative distribution function.
//   - otherwise: BTPE acceptance-rejection, O(1) expected raw words per sample.
//
// A negative trials or p outside [0,1] yields ErrInvalidParameter, a negative n ErrInvalidSize.
// Nothing is written and the state is unchanged in both cases.
func (g *Generator) Binomial(trials int64, p float64, n int) ([]int64, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if err := checkBinomial(trials, p); err != nil {
		return nil, err
	}
	out := g.ints.acquire(n)
	switch g.alg {
	case Xorshift128Plus:
		fillBinomial(&g.xs, trials, p, out)
	default:
		fillBinomial(&g.xo, trials, p, out)
	}
	return g.ints.present(), nil
}

// BinomialWith is Binomial with the request described by p.
func (g *Generator) BinomialWith(p BinomialParams) ([]int64, error) {
	return g.Binomial(p.N, p.P, p.Size)
}
